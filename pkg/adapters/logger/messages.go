package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Pipeline progress (info)
		"Scanning %s for images":                     "%s の画像を検索中",
		"Found %d images":                            "%d 枚の画像が見つかりました",
		"Encoding %d frames (loop %d, %d ms per frame)": "%d フレームをエンコード中 (ループ %d, 1フレーム %d ms)",
		"Done! New gif can be found at %s":           "完了しました。新しいGIFは %s にあります",
		"Interrupted, shutting down...":              "中断されました。シャットダウン中...",

		// Component details (debug)
		"Loading font %s (%.0fpt)":          "フォント %s を読み込み中 (%.0fpt)",
		"Listed %d entries, %d supported":   "%d 件中 %d 件が対応画像です",
		"Preparing frame %d/%d: %s":         "フレーム準備中 %d/%d: %s",
		"Decoded %s (%dx%d)":                "%s をデコードしました (%dx%d)",
		"Drew label %q at (%d, %d)":         "ラベル %q を (%d, %d) に描画しました",
		"Encoded %d frames into %d bytes":   "%d フレームを %d バイトにエンコードしました",
		"Wrote %s":                          "%s を書き込みました",
		"Saved debug output to %s":          "デバッグ出力を %s に保存しました",

		// Informational deviations
		"Output file extension must be '.gif'. This has been automatically added.": "出力ファイルの拡張子は '.gif' である必要があります。自動的に付与しました。",

		// Warnings
		"Failed to save debug output: %s": "デバッグ出力の保存に失敗しました: %s",

		// Errors
		"Font not found... Please specify a valid font path.":              "フォントが見つかりません。有効なフォントパスを指定してください。",
		"Input folder not found... Please specify a valid input folder.":   "入力フォルダが見つかりません。有効な入力フォルダを指定してください。",
		"No images were found... Please specify a valid input folder.":     "画像が見つかりません。有効な入力フォルダを指定してください。",
		"Failed to prepare frame: %s":                                      "フレームの準備に失敗しました: %s",
		"Something went wrong... Your output filepath may be invalid.":     "問題が発生しました。出力ファイルパスが無効な可能性があります。",
		"Run cancelled: %s":                                                "実行が中止されました: %s",
	})
}
