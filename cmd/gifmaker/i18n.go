// Package main provides localization for the gifmaker CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input and Output": "入出力",
		"Animation":        "アニメーション",
		"Label":            "ラベル",
		"Configuration":    "設定ファイル",
		"Debug":            "デバッグ",
		"Logging":          "ログ",

		// Root command
		"Create an animated GIF from a directory of images": "ディレクトリ内の画像からアニメーションGIFを作成",
		"gifmaker turns every PNG, JPEG, GIF and BMP file in a directory into one looping animated GIF, optionally labelling each frame with its file name.": "gifmakerはディレクトリ内のPNG・JPEG・GIF・BMPファイルをまとめてループするアニメーションGIFに変換します。各フレームにファイル名を描画することもできます。",
		"gifmaker version %s": "gifmaker バージョン %s",

		// Input and output flags
		"Directory containing the source images":             "元画像を含むディレクトリ",
		"Output GIF file path (.gif is added when missing)": "出力GIFファイルパス（.gifがない場合は自動で付加）",

		// Animation flags
		"Loop count written to the GIF (0 = loop forever)": "GIFに書き込むループ回数（0 = 無限ループ）",
		"Display time of each frame in milliseconds":       "各フレームの表示時間（ミリ秒）",

		// Label flags
		"Draw each file's base name on its frame (true or false)": "各フレームにファイル名を描画する（true または false）",
		"TrueType font used for labels":                           "ラベルに使用するTrueTypeフォント",
		"Label font size in points":                               "ラベルのフォントサイズ（ポイント）",

		// Configuration flags
		"YAML configuration file (flags override its values)": "YAML設定ファイル（フラグの値が優先されます）",
		"Write a Markdown run summary to this path":           "実行サマリーをMarkdown形式でこのパスに出力",

		// Debug flags
		"Save prepared frames and a run manifest": "加工済みフレームと実行マニフェストを保存",
		"Directory for debug output":              "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Summary saved to %s":                                 "サマリーを %s に保存しました",
		"Failed to write summary: %s":                         "サマリーの書き込みに失敗しました: %s",
		"Failed to create debug directory: %s":                "デバッグディレクトリの作成に失敗しました: %s",
		"Invalid value %q for --add_name: use true or false": "--add_name の値 %q が不正です: true または false を指定してください",

		// Summary content
		"GIF Summary":  "GIFサマリー",
		"Input":        "入力",
		"Directory":    "ディレクトリ",
		"Images":       "画像数",
		"Settings":     "設定",
		"Loop":         "ループ",
		"Infinite":     "無限",
		"Frame Delay":  "フレーム間隔",
		"Labels":       "ラベル",
		"Enabled":      "有効",
		"Disabled":     "無効",
		"Font":         "フォント",
		"Output":       "出力",
		"File":         "ファイル",
		"Note":         "備考",
		"Frames":       "フレーム数",
		"Duration":     "再生時間",
		"File Size":    "ファイルサイズ",
		"Generated at": "生成日時",

		"The .gif extension was added automatically": "拡張子 .gif が自動的に付加されました",
	})
}
