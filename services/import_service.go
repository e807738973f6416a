package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The six nutrient-file CSVs, in dependency order.
var importFiles = []string{
	"FOOD_GROUPS.csv",
	"NUTRIENTS.csv",
	"FOODS.csv",
	"NUTRIENT_AMOUNTS.csv",
	"MEASURES.csv",
	"CONVERSION_FACTORS.csv",
}

// ObjectFetcher retrieves a named object from a remote source (S3 in
// production). Lets the importer pull the catalog CSVs from a bucket.
type ObjectFetcher interface {
	Fetch(key string) (io.ReadCloser, error)
}

// ImportService bulk-loads the food catalog from delimited files into the
// store. Rows are upserted so a reimport refreshes in place; the catalog
// cache is reset afterwards so readers see the new data.
type ImportService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewImportService(db *gorm.DB, catalog *CatalogService) *ImportService {
	return &ImportService{db: db, catalog: catalog}
}

// ImportDir loads the catalog CSVs from a local directory.
func (s *ImportService) ImportDir(dir string) error {
	for _, name := range importFiles {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("open %s: %w", name, err)
		}
		err = s.importFile(name, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	s.catalog.Reset()
	return nil
}

// ImportFrom loads the catalog CSVs through an ObjectFetcher, prefix being
// the key prefix under which the six files live.
func (s *ImportService) ImportFrom(fetcher ObjectFetcher, prefix string) error {
	for _, name := range importFiles {
		rc, err := fetcher.Fetch(prefix + name)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", name, err)
		}
		err = s.importFile(name, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	s.catalog.Reset()
	return nil
}

func (s *ImportService) importFile(name string, r io.Reader) error {
	rows, err := readCSV(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	switch name {
	case "FOOD_GROUPS.csv":
		return s.loadFoodGroups(rows)
	case "NUTRIENTS.csv":
		return s.loadNutrients(rows)
	case "FOODS.csv":
		return s.loadFoods(rows)
	case "NUTRIENT_AMOUNTS.csv":
		return s.loadNutrientAmounts(rows)
	case "MEASURES.csv":
		return s.loadMeasures(rows)
	case "CONVERSION_FACTORS.csv":
		return s.loadConversionFactors(rows)
	}
	return fmt.Errorf("unknown import file %s", name)
}

// row is one CSV record keyed by its header column names.
type row map[string]string

func readCSV(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	var rows []row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		m := make(row, len(header))
		for i, col := range header {
			if i < len(rec) {
				m[col] = rec[i]
			}
		}
		rows = append(rows, m)
	}
	return rows, nil
}

func (r row) uint(col string) (uint, error) {
	v, err := strconv.ParseUint(r[col], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return uint(v), nil
}

func (r row) float(col string) (float64, error) {
	v, err := strconv.ParseFloat(r[col], 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

func (s *ImportService) loadFoodGroups(rows []row) error {
	for _, r := range rows {
		id, err := r.uint("id")
		if err != nil {
			return err
		}
		g := models.FoodGroup{ID: id, Name: r["name"]}
		if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&g).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ImportService) loadNutrients(rows []row) error {
	for _, r := range rows {
		id, err := r.uint("id")
		if err != nil {
			return err
		}
		n := models.Nutrient{ID: id, Name: r["name"], Unit: r["unit"]}
		if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&n).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ImportService) loadFoods(rows []row) error {
	for _, r := range rows {
		id, err := r.uint("id")
		if err != nil {
			return err
		}
		groupID, err := r.uint("food_group_id")
		if err != nil {
			return err
		}
		f := models.Food{ID: id, Description: r["description"], FoodGroupID: groupID}
		if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&f).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ImportService) loadNutrientAmounts(rows []row) error {
	for _, r := range rows {
		foodID, err := r.uint("food_id")
		if err != nil {
			return err
		}
		nutrientID, err := r.uint("nutrient_id")
		if err != nil {
			return err
		}
		amount, err := r.float("amount")
		if err != nil {
			return err
		}
		na := models.NutrientAmount{FoodID: foodID, NutrientID: nutrientID, Amount: amount}
		if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&na).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ImportService) loadMeasures(rows []row) error {
	for _, r := range rows {
		id, err := r.uint("id")
		if err != nil {
			return err
		}
		m := models.Measure{ID: id, Name: r["name"]}
		if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ImportService) loadConversionFactors(rows []row) error {
	for _, r := range rows {
		foodID, err := r.uint("food_id")
		if err != nil {
			return err
		}
		measureID, err := r.uint("measure_id")
		if err != nil {
			return err
		}
		value, err := r.float("value")
		if err != nil {
			return err
		}
		cf := models.ConversionFactor{FoodID: foodID, MeasureID: measureID, Value: value}
		if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&cf).Error; err != nil {
			return err
		}
	}
	return nil
}
