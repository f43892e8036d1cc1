package entities

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/numeric"
)

// spellMeta is the spell block as older sheet files name it, with the
// modifier and save DC written out
type spellMeta struct {
	Ability     AbilityKey     `json:"ability"`
	Domain      string         `json:"domain"`
	Mod         numeric.Number `json:"mod"`
	SpellAttack numeric.Number `json:"spellAttack"`
	SpellSave   numeric.Number `json:"spellSave"`
}

type sheetDocument struct {
	*Character
	SpellMeta spellMeta `json:"spellMeta"`
}

type spellBlocks struct {
	Spellcasting json.RawMessage `json:"spellcasting"`
	SpellMeta    *spellMeta      `json:"spellMeta"`
}

// DecodeCharacter reads a sheet from JSON. The document must be a JSON
// object whose fields have the expected shapes; anything else is
// InvalidArgument and nothing is returned. Missing parts are filled by
// Normalize. A spellMeta block is read when spellcasting is absent.
func DecodeCharacter(data []byte) (*Character, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.InvalidArgument("character data is not a JSON object")
	}

	var c Character
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "character data does not decode")
	}

	var blocks spellBlocks
	if err := json.Unmarshal(trimmed, &blocks); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "spell block does not decode")
	}
	if blocks.Spellcasting == nil && blocks.SpellMeta != nil {
		c.Spellcasting = Spellcasting{
			Ability:     blocks.SpellMeta.Ability,
			Domain:      blocks.SpellMeta.Domain,
			SpellAttack: blocks.SpellMeta.SpellAttack,
		}
	}

	c.Normalize()
	return &c, nil
}

// EncodeCharacter writes a sheet as JSON. indent pretty-prints for export.
// The spell block is written twice: as spellcasting, and as spellMeta with
// the derived modifier and save DC.
func EncodeCharacter(c *Character, indent bool) ([]byte, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	doc := sheetDocument{
		Character: c,
		SpellMeta: spellMeta{
			Ability:     c.Spellcasting.Ability,
			Domain:      c.Spellcasting.Domain,
			Mod:         c.SpellcastingMod(),
			SpellAttack: c.Spellcasting.SpellAttack,
			SpellSave:   c.SpellSaveDC(),
		},
	}

	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode character")
	}
	return data, nil
}
