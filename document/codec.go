package document

import (
	"encoding/json"
	"fmt"
)

// The wire form of an element carries a "type" discriminant next to the
// variant fields. Marshal adds it through per-variant aliases; unmarshal
// probes it first and decodes into the matching variant.

func (e *TextElement) MarshalJSON() ([]byte, error) {
	type alias TextElement
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		*alias
	}{TypeText, (*alias)(e)})
}

func (e *ImageElement) MarshalJSON() ([]byte, error) {
	type alias ImageElement
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		*alias
	}{TypeImage, (*alias)(e)})
}

func (e *FormulaElement) MarshalJSON() ([]byte, error) {
	type alias FormulaElement
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		*alias
	}{TypeFormula, (*alias)(e)})
}

// UnmarshalElement decodes a single element from its tagged wire form.
func UnmarshalElement(data []byte) (Element, error) {
	var probe struct {
		Type ElementType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode element discriminant: %w", err)
	}
	switch probe.Type {
	case TypeText:
		var el TextElement
		if err := json.Unmarshal(data, &el); err != nil {
			return nil, fmt.Errorf("decode text element: %w", err)
		}
		return &el, nil
	case TypeImage:
		var el ImageElement
		if err := json.Unmarshal(data, &el); err != nil {
			return nil, fmt.Errorf("decode image element: %w", err)
		}
		return &el, nil
	case TypeFormula:
		var el FormulaElement
		if err := json.Unmarshal(data, &el); err != nil {
			return nil, fmt.Errorf("decode formula element: %w", err)
		}
		return &el, nil
	default:
		return nil, fmt.Errorf("unknown element type %q", probe.Type)
	}
}

func (p *Page) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID       string            `json:"id"`
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	p.ID = wire.ID
	p.Elements = make([]Element, 0, len(wire.Elements))
	for _, raw := range wire.Elements {
		el, err := UnmarshalElement(raw)
		if err != nil {
			return err
		}
		p.Elements = append(p.Elements, el)
	}
	return nil
}
