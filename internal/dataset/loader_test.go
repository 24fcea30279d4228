package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const header = "fixed acidity;volatile acidity;citric acid;residual sugar;chlorides;free sulfur dioxide;total sulfur dioxide;density;pH;sulphates;alcohol;quality"

var sampleRows = []string{
	"7.4;0.7;0;1.9;0.076;11;34;0.9978;3.51;0.56;9.4;5",
	"7.8;0.88;0;2.6;0.098;25;67;0.9968;3.2;0.68;9.8;5",
	"11.2;0.28;0.56;1.9;0.075;17;60;0.998;3.16;0.58;9.8;6",
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wine.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, append([]string{header}, sampleRows...)...)
	ds, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("got %d records, want 3", ds.Len())
	}
	r := ds.Records[0]
	if r.Quality != 5 {
		t.Errorf("quality = %d, want 5", r.Quality)
	}
	if got := r.Attrs[0]; got != 7.4 {
		t.Errorf("fixed acidity = %v, want 7.4", got)
	}
	alcohol, err := ds.Column("alcohol")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if alcohol[2] != 9.8 {
		t.Errorf("alcohol[2] = %v, want 9.8", alcohol[2])
	}
	qual, err := ds.Column(QualityColumn)
	if err != nil {
		t.Fatalf("Column quality: %v", err)
	}
	if qual[2] != 6 {
		t.Errorf("quality[2] = %v, want 6", qual[2])
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeCSV(t, header)
	ds, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 0 {
		t.Fatalf("got %d records, want 0", ds.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), 0)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMissingColumn(t *testing.T) {
	bad := strings.Replace(header, "alcohol", "abv", 1)
	path := writeCSV(t, bad, sampleRows[0])
	_, err := Load(path, 0)
	if err == nil || !strings.Contains(err.Error(), `missing column "alcohol"`) {
		t.Fatalf("err = %v, want missing column", err)
	}
}

func TestLoadWrongFieldCount(t *testing.T) {
	path := writeCSV(t, header, "7.4;0.7;0;1.9")
	if _, err := Load(path, 0); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestLoadNonNumericValue(t *testing.T) {
	row := strings.Replace(sampleRows[0], "0.076", "n/a", 1)
	path := writeCSV(t, header, row)
	_, err := Load(path, 0)
	if err == nil || !strings.Contains(err.Error(), `"chlorides"`) {
		t.Fatalf("err = %v, want chlorides parse error", err)
	}
}

func TestLoadFractionalQuality(t *testing.T) {
	row := sampleRows[0][:strings.LastIndex(sampleRows[0], ";")] + ";5.5"
	path := writeCSV(t, header, row)
	_, err := Load(path, 0)
	if err == nil || !strings.Contains(err.Error(), "not an integer") {
		t.Fatalf("err = %v, want integer quality error", err)
	}
}

func TestLoadIntegerishQuality(t *testing.T) {
	row := sampleRows[0][:strings.LastIndex(sampleRows[0], ";")] + ";5.0"
	path := writeCSV(t, header, row)
	ds, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Records[0].Quality != 5 {
		t.Errorf("quality = %d, want 5", ds.Records[0].Quality)
	}
}

func TestLoadCommaDelimiter(t *testing.T) {
	lines := []string{strings.ReplaceAll(header, ";", ","), strings.ReplaceAll(sampleRows[0], ";", ",")}
	path := writeCSV(t, lines...)
	ds, err := Load(path, ',')
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 1 {
		t.Fatalf("got %d records, want 1", ds.Len())
	}
}

func TestColumnUnknown(t *testing.T) {
	if _, err := (Dataset{}).Column("tannins"); err == nil {
		t.Fatal("expected unknown column error")
	}
}

func TestHead(t *testing.T) {
	path := writeCSV(t, append([]string{header}, sampleRows...)...)
	ds, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(ds.Head(5)); got != 3 {
		t.Errorf("Head(5) = %d records, want 3", got)
	}
	if got := len(ds.Head(2)); got != 2 {
		t.Errorf("Head(2) = %d records, want 2", got)
	}
}
