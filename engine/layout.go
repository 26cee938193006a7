package engine

import (
	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/parameter"
)

// FieldForScreen sizes the pitch to a terminal of cols x rows cells, below the HUD
func FieldForScreen(cols, rows int) component.Field {
	return component.FieldFromCells(cols, rows-parameter.HUDRows)
}
