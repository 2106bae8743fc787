package equip

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var itemSchemaJSON string

// Parser validates raw records against the compiled equip item schema.
type Parser struct {
	schema *gojsonschema.Schema
}

// NewParser compiles the embedded item schema.
//
// Postcondition: Returns a ready Parser or a non-nil error.
func NewParser() (*Parser, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(itemSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compiling item schema: %w", err)
	}
	return &Parser{schema: schema}, nil
}

var defaultParser = sync.OnceValues(NewParser)

// ParseDatabase parses a document shaped like assets/data/item-database.json,
// dropping every record whose type is not EQUIP.
func ParseDatabase(data []byte) (*Database, error) {
	p, err := defaultParser()
	if err != nil {
		return nil, err
	}
	return p.ParseDatabase(data)
}

// ParseItems parses a bare JSON array of records, such as the extracted
// equips file, dropping every record whose type is not EQUIP.
func ParseItems(data []byte) ([]Item, error) {
	p, err := defaultParser()
	if err != nil {
		return nil, err
	}
	return p.ParseItems(data)
}

// ParseDatabase parses an {"items": [...]} document.
//
// Precondition: data is the complete document.
// Postcondition: Returns every EQUIP record as an Item in input order, or a
// *ValidationError for the first record violating the contract.
func (p *Parser) ParseDatabase(data []byte) (*Database, error) {
	if !gjson.ValidBytes(data) {
		return nil, documentError("(root)", "document is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, documentError("(root)", "document must be an object")
	}
	items := doc.Get("items")
	if !items.IsArray() {
		return nil, documentError("items", "must be an array")
	}
	parsed, err := p.parseArray(items, "items.")
	if err != nil {
		return nil, err
	}
	return &Database{Items: parsed}, nil
}

// ParseItems parses a bare array of records.
func (p *Parser) ParseItems(data []byte) ([]Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, documentError("(root)", "document is not valid JSON")
	}
	arr := gjson.ParseBytes(data)
	if !arr.IsArray() {
		return nil, documentError("(root)", "must be an array")
	}
	return p.parseArray(arr, "")
}

func (p *Parser) parseArray(arr gjson.Result, prefix string) ([]Item, error) {
	records, err := filterEquip(arr, prefix)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(records))
	for _, rec := range records {
		it, err := p.validate(rec, prefix)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// record is an EQUIP record located by the loose filter.
type record struct {
	index int
	raw   gjson.Result
}

// filterEquip applies the loose pass: every record must be an object with a
// string type; only EQUIP records survive.
func filterEquip(arr gjson.Result, prefix string) ([]record, error) {
	var (
		out  []record
		ferr error
		i    int
	)
	arr.ForEach(func(_, v gjson.Result) bool {
		idx := i
		i++
		if !v.IsObject() {
			ferr = &ValidationError{Index: idx, Errors: []FieldError{{
				Field: fmt.Sprintf("%s%d", prefix, idx), Message: "record must be an object",
			}}}
			return false
		}
		typ := v.Get("type")
		if typ.Type != gjson.String {
			ferr = &ValidationError{Index: idx, Order: orderOf(v), Errors: []FieldError{{
				Field: fmt.Sprintf("%s%d.type", prefix, idx), Message: "must be a string",
			}}}
			return false
		}
		if typ.Str == TypeEquip {
			out = append(out, record{index: idx, raw: v})
		}
		return true
	})
	if ferr != nil {
		return nil, ferr
	}
	return out, nil
}

// FilterEquipRecords returns the raw EQUIP records of a bare array or an
// {"items": [...]} document without strictly validating them.
func FilterEquipRecords(data []byte) ([]json.RawMessage, error) {
	if !gjson.ValidBytes(data) {
		return nil, documentError("(root)", "document is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	prefix := ""
	if doc.IsObject() {
		doc = doc.Get("items")
		prefix = "items."
	}
	if !doc.IsArray() {
		return nil, documentError("items", "must be an array")
	}
	records, err := filterEquip(doc, prefix)
	if err != nil {
		return nil, err
	}
	out := make([]json.RawMessage, len(records))
	for i, rec := range records {
		out[i] = json.RawMessage(rec.raw.Raw)
	}
	return out, nil
}

// validate applies the strict pass to a single record.
func (p *Parser) validate(rec record, prefix string) (Item, error) {
	raw := []byte(rec.raw.Raw)
	result, err := p.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Item{}, &ValidationError{Index: rec.index, Order: orderOf(rec.raw), Errors: []FieldError{{
			Field: fmt.Sprintf("%s%d", prefix, rec.index), Message: err.Error(),
		}}}
	}
	if !result.Valid() {
		verr := &ValidationError{
			Index:  rec.index,
			Order:  orderOf(rec.raw),
			Errors: make([]FieldError, 0, len(result.Errors())),
		}
		for _, desc := range result.Errors() {
			field := fmt.Sprintf("%s%d", prefix, rec.index)
			if f := desc.Field(); f != "" && f != "(root)" {
				field += "." + f
			}
			verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
		}
		return Item{}, verr
	}

	var it Item
	if err := json.Unmarshal(raw, &it); err != nil {
		return Item{}, &ValidationError{Index: rec.index, Order: orderOf(rec.raw), Errors: []FieldError{{
			Field: fmt.Sprintf("%s%d", prefix, rec.index), Message: err.Error(),
		}}}
	}
	if it.Properties == nil {
		it.Properties = map[string]float64{}
	}
	return it, nil
}

// orderOf returns the record's order when it is an integral number.
func orderOf(v gjson.Result) *int {
	o := v.Get("order")
	if o.Type != gjson.Number || o.Num != float64(int(o.Num)) {
		return nil
	}
	n := int(o.Num)
	return &n
}
