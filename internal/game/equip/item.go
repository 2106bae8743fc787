// Package equip validates raw item-database records into typed equipment
// items and answers read-only queries over them.
package equip

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TypeEquip is the record type of equippable items.
const TypeEquip = "EQUIP"

// DefaultLocale is the language key used for display names and the
// unobtainable-item convention.
const DefaultLocale = "en_US"

// ElementCount is the number of elemental multipliers every item carries.
const ElementCount = 4

// Languages lists the language keys shipped by the official item database.
// Custom items may carry additional keys; they are preserved.
var Languages = []string{"en_US", "de_DE", "fr_FR", "zh_CN", "zh_TW", "ja_JP", "ko_KR"}

// LocalizedText is a language-keyed string table with its language-group id.
type LocalizedText struct {
	LangUID float64
	Text    map[string]string
}

// Get returns the text for locale and whether it is present.
func (l LocalizedText) Get(locale string) (string, bool) {
	s, ok := l.Text[locale]
	return s, ok
}

// UnmarshalJSON decodes the fixed langUid field strictly and accumulates
// every other key as a language string.
func (l *LocalizedText) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	uid, ok := raw["langUid"]
	if !ok {
		return fmt.Errorf("localized text: missing langUid")
	}
	if err := json.Unmarshal(uid, &l.LangUID); err != nil {
		return fmt.Errorf("localized text: langUid: %w", err)
	}
	delete(raw, "langUid")

	l.Text = make(map[string]string, len(raw))
	for lang, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("localized text: %s: %w", lang, err)
		}
		l.Text[lang] = s
	}
	return nil
}

// MarshalJSON writes the table back in its flat wire form.
func (l LocalizedText) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(l.Text)+1)
	for lang, s := range l.Text {
		flat[lang] = s
	}
	flat["langUid"] = l.LangUID
	return json.Marshal(flat)
}

// Effect references the item's effect sheet entry.
type Effect struct {
	Sheet string  `json:"sheet"`
	Name  *string `json:"name"`
}

// Params is an item's stat block. A nil stat contributes nothing.
type Params struct {
	ElemFactor [ElementCount]float64 `json:"elemFactor"`
	HP         *float64              `json:"hp,omitempty"`
	Attack     *float64              `json:"attack,omitempty"`
	Defense    *float64              `json:"defense,omitempty"`
	Focus      *float64              `json:"focus,omitempty"`
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	out := Params{ElemFactor: p.ElemFactor}
	out.HP = clonePtr(p.HP)
	out.Attack = clonePtr(p.Attack)
	out.Defense = clonePtr(p.Defense)
	out.Focus = clonePtr(p.Focus)
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Item is a validated equipment record.
type Item struct {
	Order       int                `json:"order"`
	Name        LocalizedText      `json:"name"`
	Description LocalizedText      `json:"description"`
	Type        string             `json:"type"`
	Rarity      float64            `json:"rarity"`
	Level       int                `json:"level"`
	Icon        string             `json:"icon"`
	NoTrack     *bool              `json:"noTrack,omitempty"`
	NoCount     *bool              `json:"noCount,omitempty"`
	IsScalable  *bool              `json:"isScalable,omitempty"`
	Effect      Effect             `json:"effect"`
	Cost        float64            `json:"cost"`
	EquipType   string             `json:"equipType"`
	Params      Params             `json:"params"`
	Properties  map[string]float64 `json:"properties"`
}

// Scalable reports whether the item's stats follow the scaling table.
func (it *Item) Scalable() bool {
	return it.IsScalable != nil && *it.IsScalable
}

// DisplayName returns the item's name in locale, or "(Item ID <order>)" when
// that translation is missing.
func (it *Item) DisplayName(locale string) string {
	if s, ok := it.Name.Get(locale); ok {
		return s
	}
	return fmt.Sprintf("(Item ID %d)", it.Order)
}

// Unobtainable reports whether the item follows the convention of a
// default-locale name starting with "-".
func (it *Item) Unobtainable() bool {
	s, ok := it.Name.Get(DefaultLocale)
	return ok && strings.HasPrefix(s, "-")
}

// PropertyNames returns the item's property keys in sorted order.
func (it *Item) PropertyNames() []string {
	names := make([]string, 0, len(it.Properties))
	for name := range it.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Database is the validated content of an item-database document.
type Database struct {
	Items []Item
}
