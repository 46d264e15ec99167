package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"starshelf/internal/catalog"
	"starshelf/internal/config"
	"starshelf/internal/logging"
	"starshelf/internal/visibility"
)

type fixture struct {
	t   *testing.T
	dir string
	cfg *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Observer = config.Observer{Latitude: 45, Longitude: 0}
	for i := range cfg.Catalogs {
		cfg.Catalogs[i].MetadataFile = filepath.Join(dir, strings.ToLower(cfg.Catalogs[i].Name)+"_metadata.json")
		cfg.Catalogs[i].ImageDirs = nil
	}
	return &fixture{t: t, dir: dir, cfg: &cfg}
}

func (f *fixture) writeMetadata(catalogName, contents string) {
	f.t.Helper()
	cat, ok := f.cfg.CatalogByName(catalogName)
	if !ok {
		f.t.Fatalf("catalog %s not configured", catalogName)
	}
	if err := os.WriteFile(cat.MetadataFile, []byte(contents), 0o644); err != nil {
		f.t.Fatalf("write metadata: %v", err)
	}
}

func (f *fixture) addImageDir(catalogName string) string {
	f.t.Helper()
	dir := filepath.Join(f.dir, strings.ReplaceAll(strings.ToLower(catalogName), " ", "-")+"-images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		f.t.Fatalf("mkdir: %v", err)
	}
	for i := range f.cfg.Catalogs {
		if strings.EqualFold(f.cfg.Catalogs[i].Name, catalogName) {
			f.cfg.Catalogs[i].ImageDirs = append(f.cfg.Catalogs[i].ImageDirs, dir)
			return dir
		}
	}
	f.t.Fatalf("catalog %s not configured", catalogName)
	return ""
}

func (f *fixture) writeImage(dir, name string) string {
	f.t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("image"), 0o644); err != nil {
		f.t.Fatalf("write image: %v", err)
	}
	return path
}

func (f *fixture) load() []catalog.Record {
	f.t.Helper()
	return catalog.NewLoader(f.cfg, logging.NewNop()).Load()
}

func findRecord(t *testing.T, records []catalog.Record, catalogName, objectID string) catalog.Record {
	t.Helper()
	for _, record := range records {
		if record.Catalog == catalogName && record.ObjectID == objectID {
			return record
		}
	}
	t.Fatalf("record %s:%s not found in %d records", catalogName, objectID, len(records))
	return catalog.Record{}
}

func TestLoadJoinsMetadataWithImages(t *testing.T) {
	f := newFixture(t)
	dir := f.addImageDir("Messier")
	img := f.writeImage(dir, "M31_ha.jpg")
	f.writeMetadata("Messier", `{"Messier": {"M31": {
		"name": "Andromeda Galaxy",
		"type": "Galaxy",
		"best_months": "SepOctNov",
		"ra_hours": 0.712,
		"dec_deg": 41.27
	}}}`)

	records := f.load()
	m31 := findRecord(t, records, "Messier", "M31")
	if m31.Name != "Andromeda Galaxy" || m31.ObjectType != "Galaxy" {
		t.Fatalf("metadata fields not joined: %+v", m31)
	}
	if len(m31.ImagePaths) != 1 || m31.ImagePaths[0] != img {
		t.Fatalf("image paths %v, want [%s]", m31.ImagePaths, img)
	}
	if m31.ThumbnailPath != img {
		t.Fatalf("thumbnail %q, want first image", m31.ThumbnailPath)
	}
	if m31.BestMonths != "SepOctNov" {
		t.Fatalf("best months %q, want metadata value untouched for northern observer", m31.BestMonths)
	}
	if m31.DisplayName() != "M31 - Andromeda Galaxy" {
		t.Fatalf("display name %q", m31.DisplayName())
	}
}

func TestLoadComputesBestMonthsWhenAbsent(t *testing.T) {
	f := newFixture(t)
	f.writeMetadata("Messier", `{"Messier": {"M31": {"ra_hours": 0.712, "dec_deg": 89.0}}}`)

	m31 := findRecord(t, f.load(), "Messier", "M31")
	if m31.BestMonths != "JanFebMarAprMayJunJulAugSepOctNovDec" {
		t.Fatalf("computed best months %q, want circumpolar full year", m31.BestMonths)
	}
}

func TestLoadSouthernObserverShiftsSuppliedMonths(t *testing.T) {
	f := newFixture(t)
	f.cfg.Observer.Latitude = -33.9
	f.writeMetadata("Messier", `{"Messier": {"M31": {"best_months": "JanDec"}}}`)

	m31 := findRecord(t, f.load(), "Messier", "M31")
	if m31.BestMonths != "JulJun" {
		t.Fatalf("southern shift produced %q, want JulJun", m31.BestMonths)
	}
}

func TestLoadSouthernShiftDisabledByPolicy(t *testing.T) {
	f := newFixture(t)
	f.cfg.Observer.Latitude = -33.9
	f.writeMetadata("Messier", `{"Messier": {"M31": {"best_months": "JanDec"}}}`)

	loader := catalog.NewLoader(f.cfg, logging.NewNop())
	loader.HemispherePolicy = visibility.KeepNorthern
	records := loader.Load()
	m31 := findRecord(t, records, "Messier", "M31")
	if m31.BestMonths != "JanDec" {
		t.Fatalf("policy override produced %q, want JanDec", m31.BestMonths)
	}
}

func TestLoadMalformedCoordinatesDegradeGracefully(t *testing.T) {
	f := newFixture(t)
	f.writeMetadata("Messier", `{"Messier": {"M31": {"ra_hours": "zero hours", "dec_deg": "north"}}}`)

	m31 := findRecord(t, f.load(), "Messier", "M31")
	if m31.RAHours != nil || m31.DecDeg != nil {
		t.Fatalf("malformed coordinates should stay unset: %+v", m31)
	}
	if m31.BestMonths != "" {
		t.Fatalf("no coordinates means no computed months, got %q", m31.BestMonths)
	}
}

func TestLoadSkipsCatalogWithoutMetadataFile(t *testing.T) {
	f := newFixture(t)
	dir := f.addImageDir("Caldwell")
	f.writeImage(dir, "C14_cluster.jpg")
	// No metadata file written for Caldwell: no records at all, not even
	// image-only synthesis.
	for _, record := range f.load() {
		if record.Catalog == "Caldwell" {
			t.Fatalf("catalog without metadata must be skipped, found %+v", record)
		}
	}
}

func TestLoadSynthesizesImageOnlyRecords(t *testing.T) {
	f := newFixture(t)
	dir := f.addImageDir("Messier")
	img := f.writeImage(dir, "M13_cluster.jpg")
	f.writeImage(dir, "NGC7000_wall.jpg")
	f.writeMetadata("Messier", `{"Messier": {"M31": {"name": "Andromeda Galaxy"}}}`)

	records := f.load()
	m13 := findRecord(t, records, "Messier", "M13")
	if m13.Name != "" || len(m13.ImagePaths) != 1 || m13.ThumbnailPath != img {
		t.Fatalf("image-only record malformed: %+v", m13)
	}
	if m13.ExternalLink != "https://en.wikipedia.org/wiki/Messier_13" {
		t.Fatalf("default link %q", m13.ExternalLink)
	}
	// NGC ids do not synthesize into the Messier catalog.
	for _, record := range records {
		if record.Catalog == "Messier" && record.ObjectID == "NGC7000" {
			t.Fatalf("NGC id synthesized into Messier catalog: %+v", record)
		}
	}
}

func TestLoadCrossCatalogDiscovery(t *testing.T) {
	f := newFixture(t)
	ngcDir := f.addImageDir("NGC")
	img := f.writeImage(ngcDir, "NGC1976_core.jpg")
	f.writeMetadata("Messier", `{"Messier": {"M42": {"name": "Orion Nebula"}}}`)
	f.writeMetadata("NGC", `{"NGC": {"NGC1976": {"name": "Orion Nebula"}}}`)

	records := f.load()
	m42 := findRecord(t, records, "Messier", "M42")
	if len(m42.ImagePaths) != 1 || m42.ImagePaths[0] != img {
		t.Fatalf("M42 should discover the NGC-named image via sibling dirs + aliases, got %v", m42.ImagePaths)
	}
	ngc := findRecord(t, records, "NGC", "NGC1976")
	if len(ngc.ImagePaths) != 1 || ngc.ImagePaths[0] != img {
		t.Fatalf("NGC1976 should keep its own image, got %v", ngc.ImagePaths)
	}
}

func TestLoadThumbnailSelection(t *testing.T) {
	f := newFixture(t)
	dir := f.addImageDir("Messier")
	f.writeImage(dir, "M27_a.jpg")
	chosen := f.writeImage(dir, "M27_b.jpg")
	f.writeImage(dir, "M27_c.jpg")
	f.writeMetadata("Messier", `{"Messier": {"M27": {"thumbnail": "M27_b.jpg"}}}`)

	m27 := findRecord(t, f.load(), "Messier", "M27")
	if m27.ThumbnailPath != chosen {
		t.Fatalf("thumbnail %q, want exact filename match %q", m27.ThumbnailPath, chosen)
	}
}

func TestLoadThumbnailStemFallback(t *testing.T) {
	f := newFixture(t)
	dir := f.addImageDir("Messier")
	chosen := f.writeImage(dir, "M27_b.jpg")
	f.writeImage(dir, "M27_a.jpg")
	f.writeMetadata("Messier", `{"Messier": {"M27": {"thumbnail": "M27_b"}}}`)

	m27 := findRecord(t, f.load(), "Messier", "M27")
	if m27.ThumbnailPath != chosen {
		t.Fatalf("thumbnail %q, want stem match %q", m27.ThumbnailPath, chosen)
	}
}

func TestLoadSolarSystemCatalog(t *testing.T) {
	f := newFixture(t)
	f.cfg.Catalogs = append(f.cfg.Catalogs, config.Catalog{
		Name:         config.CatalogSolarSystem,
		MetadataFile: filepath.Join(f.dir, "solar_metadata.json"),
	})
	dir := f.addImageDir(config.CatalogSolarSystem)
	img := f.writeImage(dir, "Jupiter_GRS.jpg")
	f.writeImage(dir, "M31_not_solar.jpg")
	f.writeMetadata(config.CatalogSolarSystem, `{"Solar system": {"JUPITER": {"name": "Jupiter", "type": "Planet"}}}`)

	records := f.load()
	jupiter := findRecord(t, records, config.CatalogSolarSystem, "JUPITER")
	if len(jupiter.ImagePaths) != 1 || jupiter.ImagePaths[0] != img {
		t.Fatalf("jupiter images %v, want [%s]", jupiter.ImagePaths, img)
	}
	for _, record := range records {
		if record.Catalog == config.CatalogSolarSystem && record.ObjectID == "M31" {
			t.Fatalf("catalog ids must not leak into the solar grouping: %+v", record)
		}
	}
}

func TestLoadRecordsAreOrderedAndUnique(t *testing.T) {
	f := newFixture(t)
	f.writeMetadata("Messier", `{"Messier": {"M10": {}, "M2": {}, "M1": {}}}`)

	records := f.load()
	var messier []string
	seen := make(map[string]bool)
	for _, record := range records {
		if seen[record.UniqueKey()] {
			t.Fatalf("duplicate record key %s", record.UniqueKey())
		}
		seen[record.UniqueKey()] = true
		if record.Catalog == "Messier" {
			messier = append(messier, record.ObjectID)
		}
	}
	want := []string{"M1", "M2", "M10"}
	if len(messier) != 3 || messier[0] != want[0] || messier[1] != want[1] || messier[2] != want[2] {
		t.Fatalf("messier order %v, want %v", messier, want)
	}
}

func TestLoadSolarRecordsInEphemerisOrder(t *testing.T) {
	f := newFixture(t)
	f.cfg.Catalogs = append(f.cfg.Catalogs, config.Catalog{
		Name:         config.CatalogSolarSystem,
		MetadataFile: filepath.Join(f.dir, "solar_metadata.json"),
	})
	f.writeMetadata(config.CatalogSolarSystem, `{"Solar system": {"VESTA": {}, "SUN": {}, "JUPITER": {}}}`)

	var solar []string
	for _, record := range f.load() {
		if record.Catalog == config.CatalogSolarSystem {
			solar = append(solar, record.ObjectID)
		}
	}
	want := []string{"SUN", "JUPITER", "VESTA"}
	if len(solar) != 3 || solar[0] != want[0] || solar[1] != want[1] || solar[2] != want[2] {
		t.Fatalf("solar order %v, want %v", solar, want)
	}
}

func TestCollectObjectTypes(t *testing.T) {
	records := []catalog.Record{
		{ObjectType: "Galaxy"},
		{ObjectType: "Globular cluster"},
		{ObjectType: "Galaxy"},
		{ObjectType: ""},
	}
	got := catalog.CollectObjectTypes(records)
	if len(got) != 2 || got[0] != "Galaxy" || got[1] != "Globular cluster" {
		t.Fatalf("CollectObjectTypes = %v", got)
	}
}
