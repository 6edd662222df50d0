package engine

import (
	"io"

	"go.uber.org/zap"

	"github.com/phyten/gearscan/internal/model"
	"github.com/phyten/gearscan/internal/schematic"
)

// Item は 1 つの入力ファイル（回路図）の集計結果を表す
type Item struct {
	File         string           `json:"file"`
	Lines        int              `json:"lines"`
	Parts        int              `json:"parts"`
	Symbols      int              `json:"symbols"`
	Gears        int              `json:"gears"`
	PartSum      uint64           `json:"part_sum"`
	GearRatioSum uint64           `json:"gear_ratio_sum"`
	Adjacent     []model.Part     `json:"adjacent,omitempty"`
	Isolated     []model.Part     `json:"isolated,omitempty"`
	GearList     []schematic.Gear `json:"gear_list,omitempty"`
}

// ItemError は 1 ファイルの処理に失敗した際の情報を表す
type ItemError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Totals は全ファイルの合計
type Totals struct {
	Files        int    `json:"files"`
	Lines        int    `json:"lines"`
	Parts        int    `json:"parts"`
	Symbols      int    `json:"symbols"`
	Gears        int    `json:"gears"`
	PartSum      uint64 `json:"part_sum"`
	GearRatioSum uint64 `json:"gear_ratio_sum"`
}

// Options は実行オプション
type Options struct {
	Paths        []string    // "-" reads Stdin
	Query        string      // parts|gears|both
	GearGlyph    string      // single byte, "" means "*"
	GearArity    int         // 0 means 2
	Jobs         int
	MaxFileBytes int
	WithParts    bool
	Progress     bool
	ProgressOut  io.Writer   `json:"-"`
	Stdin        io.Reader   `json:"-"`
	Logger       *zap.Logger `json:"-"`
}

// Result は出力
type Result struct {
	Items      []Item      `json:"items"`
	Totals     Totals      `json:"totals"`
	HasParts   bool        `json:"has_parts"`
	HasGears   bool        `json:"has_gears"`
	HasList    bool        `json:"has_list"`
	Total      int         `json:"total"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Errors     []ItemError `json:"errors,omitempty"`
	ErrorCount int         `json:"error_count"`
}
