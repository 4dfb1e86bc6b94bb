package style

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsDefault,
	}
	style.Format.Header = text.FormatUpper
	return &style
}

// FloatColumn right-aligns a value column and renders floats with a fixed
// number of decimals.
func FloatColumn(name string, decimals int) table.ColumnConfig {
	return table.ColumnConfig{
		Name:  name,
		Align: text.AlignRight,
		Transformer: func(val interface{}) string {
			if f, ok := val.(float64); ok {
				return fmt.Sprintf("%.*f", decimals, f)
			}
			return fmt.Sprint(val)
		},
	}
}
