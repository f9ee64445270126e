package recipe

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"akolite/entities"
)

// Book answers what raw materials a production run of a resin consumes.
// Formulas are operator-maintained files loaded at boot; the snapshot a
// unit stores is taken through MaterialsFor at creation time.
type Book interface {
	MaterialsFor(resinType string, litres float64) []entities.MaterialLine
	Resins() []string
}

type formulaLine struct {
	Material    string
	QtyPerLitre float64
}

type book struct {
	formulas map[string][]formulaLine // resin type -> lines
}

// LoadFromFiles builds a Book from a CSV formula table and an optional
// XLSX workbook. XLSX rows extend/override the CSV ones per material.
// Both paths are optional; missing inputs yield an empty book.
func LoadFromFiles(formulaCSV, formulaXLSX string) (Book, error) {
	b := &book{formulas: map[string][]formulaLine{}}

	if formulaCSV != "" {
		if err := b.loadCSV(formulaCSV); err != nil {
			return nil, err
		}
	}
	if formulaXLSX != "" {
		if err := b.loadXLSX(formulaXLSX); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Empty returns a Book with no formulas; units created against it carry
// an empty materials snapshot.
func Empty() Book { return &book{formulas: map[string][]formulaLine{}} }

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// columns finds resin/material/qty column positions from a header row,
// accepting a few aliases the operators' sheets have used.
func columns(head []string) (resin, material, qty int, err error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[k]; ok {
				return idx
			}
		}
		return -1
	}
	resin = findAny("resintype", "resin", "product")
	material = findAny("material", "rawmaterial", "component")
	qty = findAny("qtyperlitre", "qtyperl", "perlitre", "qty")
	if resin < 0 || material < 0 || qty < 0 {
		return 0, 0, 0, fmt.Errorf("formula header missing resin/material/qty columns: %v", head)
	}
	return resin, material, qty, nil
}

func (b *book) addLine(resin, material string, perLitre float64) {
	resin = strings.TrimSpace(resin)
	material = strings.TrimSpace(material)
	if resin == "" || material == "" || perLitre <= 0 {
		return
	}
	lines := b.formulas[resin]
	for i := range lines {
		if lines[i].Material == material {
			lines[i].QtyPerLitre = perLitre
			return
		}
	}
	b.formulas[resin] = append(lines, formulaLine{Material: material, QtyPerLitre: perLitre})
}

func (b *book) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}
	ri, mi, qi, err := columns(head)
	if err != nil {
		return err
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) <= ri || len(row) <= mi || len(row) <= qi {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(row[qi]), 64)
		if err != nil {
			continue
		}
		b.addLine(row[ri], row[mi], q)
	}
	return nil
}

func (b *book) loadXLSX(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	ri, mi, qi, err := columns(rows[0])
	if err != nil {
		return err
	}
	for _, row := range rows[1:] {
		if len(row) <= ri || len(row) <= mi || len(row) <= qi {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(row[qi]), 64)
		if err != nil {
			continue
		}
		b.addLine(row[ri], row[mi], q)
	}
	return nil
}

func (b *book) MaterialsFor(resinType string, litres float64) []entities.MaterialLine {
	lines := b.formulas[resinType]
	out := make([]entities.MaterialLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entities.MaterialLine{
			Material:    l.Material,
			RequiredQty: l.QtyPerLitre * litres,
		})
	}
	return out
}

func (b *book) Resins() []string {
	out := make([]string, 0, len(b.formulas))
	for r := range b.formulas {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
