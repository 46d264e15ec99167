package config

const (
	defaultDataDir   = "~/.local/share/starshelf"
	defaultStateDir  = "~/.local/share/starshelf/state"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// CatalogMessier and friends are the canonical names of the standard catalogs.
const (
	CatalogMessier     = "Messier"
	CatalogNGC         = "NGC"
	CatalogIC          = "IC"
	CatalogCaldwell    = "Caldwell"
	CatalogSolarSystem = "Solar system"
)

// StandardCatalogNames lists the catalogs that always exist after loading, in
// declared order.
var StandardCatalogNames = []string{CatalogMessier, CatalogNGC, CatalogIC, CatalogCaldwell}

func defaultCatalogs() []Catalog {
	return []Catalog{
		{Name: CatalogMessier, MetadataFile: defaultDataDir + "/object_metadata.json"},
		{Name: CatalogNGC, MetadataFile: defaultDataDir + "/ngc_metadata.json"},
		{Name: CatalogIC, MetadataFile: defaultDataDir + "/ic_metadata.json"},
		{Name: CatalogCaldwell, MetadataFile: defaultDataDir + "/caldwell_metadata.json"},
	}
}

func defaultImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".tif", ".tiff", ".webp", ".bmp"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalogs:        defaultCatalogs(),
		ImageExtensions: defaultImageExtensions(),
		StateDir:        defaultStateDir,
		Observer:        Observer{},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
