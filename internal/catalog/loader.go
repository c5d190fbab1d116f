package catalog

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tidwall/gjson"

	"car-catalog/internal/logger"
)

var (
	ErrInvalidJSON = errors.New("catalog is not valid JSON")
	ErrNotArray    = errors.New("catalog root is not an array")
)

// Parse decodes a JSON array of car objects. Elements that are not objects are
// skipped and fields of the wrong type fall back to their zero value.
func Parse(data []byte) ([]Car, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: got %s", ErrNotArray, root.Type)
	}

	cars := make([]Car, 0)
	root.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		cars = append(cars, Car{
			Brand:       stringField(value, "brand"),
			Model:       stringField(value, "model"),
			Year:        intField(value, "year"),
			Description: stringField(value, "description"),
		})
		return true
	})

	return cars, nil
}

// Read consumes r fully and parses it.
func Read(r io.Reader) ([]Car, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func stringField(obj gjson.Result, key string) string {
	field := obj.Get(key)
	if field.Type != gjson.String {
		return ""
	}
	return field.Str
}

// intField accepts only integral numbers that fit in 32 bits.
func intField(obj gjson.Result, key string) int {
	field := obj.Get(key)
	if field.Type != gjson.Number {
		return 0
	}
	n := field.Num
	if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}

// Loader reads catalogs from disk. Failures never escape Load: they are logged
// and an empty catalog is returned.
type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Loader{logger: log}
}

// Load returns the cars stored at path, or an empty non-nil slice if the file
// cannot be read or is not a JSON array.
func (l *Loader) Load(path string) []Car {
	cars, err := l.load(path)
	if err != nil {
		l.logger.Warning("CatalogLoader", "catalog unavailable, continuing with an empty list", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return []Car{}
	}

	l.logger.Info("CatalogLoader", "catalog loaded", map[string]interface{}{
		"path": path,
		"cars": len(cars),
	})
	return cars
}

func (l *Loader) load(path string) ([]Car, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Read(f)
}
