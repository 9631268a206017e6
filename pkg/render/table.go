package render

import (
	"sort"

	"github.com/goliatone/go-dynform/pkg/record"
	"github.com/goliatone/go-dynform/pkg/schema"
)

// Column heads one record-table column.
type Column struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Row is one submitted record. Index is the record's position in the store
// and is what edit/delete actions address.
type Row struct {
	Index    int      `json:"index"`
	ID       string   `json:"id"`
	FormType string   `json:"formType"`
	Cells    []string `json:"cells"`
}

// RecordTable groups records of one form type under shared columns.
type RecordTable struct {
	FormType string   `json:"formType"`
	Columns  []Column `json:"columns"`
	Rows     []Row    `json:"rows"`
}

// RecordTables groups records by form type in order of first appearance.
// Columns follow the schema declared by source; form types the source does
// not know fall back to the sorted union of their value keys.
func RecordTables(records []record.Record, source schema.Source) []RecordTable {
	if len(records) == 0 {
		return nil
	}

	var tables []RecordTable
	positions := make(map[string]int)
	for index, rec := range records {
		pos, ok := positions[rec.FormType]
		if !ok {
			pos = len(tables)
			positions[rec.FormType] = pos
			tables = append(tables, RecordTable{FormType: rec.FormType})
		}
		tables[pos].Rows = append(tables[pos].Rows, Row{
			Index:    index,
			ID:       rec.ID,
			FormType: rec.FormType,
		})
	}

	for i := range tables {
		tables[i].Columns = columnsFor(tables[i].FormType, records, source)
		for j := range tables[i].Rows {
			values := records[tables[i].Rows[j].Index].Values
			cells := make([]string, len(tables[i].Columns))
			for k, column := range tables[i].Columns {
				cells[k] = values[column.Name]
			}
			tables[i].Rows[j].Cells = cells
		}
	}
	return tables
}

func columnsFor(formType string, records []record.Record, source schema.Source) []Column {
	var fields []schema.FieldSchema
	if source != nil {
		fields = source.Lookup(formType)
	}
	if len(fields) > 0 {
		columns := make([]Column, len(fields))
		for i, field := range fields {
			columns[i] = Column{Name: field.Name, Label: field.DisplayLabel()}
		}
		return columns
	}

	seen := make(map[string]struct{})
	var names []string
	for _, rec := range records {
		if rec.FormType != formType {
			continue
		}
		for name := range rec.Values {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Column{Name: name, Label: schema.HumanizeName(name)}
	}
	return columns
}
