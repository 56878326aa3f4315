// Package document reads and writes invoice documents.
//
// JSON and YAML input decodes into ordered *element.Map values so the
// document's field order drives population; TOML input decodes into plain
// maps. Every decoded document must have a mapping at its root.
//
//	v, err := document.ReadFile("invoice.yaml")
//	if err != nil {
//		return err
//	}
//	inv, err := invoice.NewInvoice(v)
package document
