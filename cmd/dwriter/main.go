package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/evilsocket/datawriter/backends/all"
	"github.com/evilsocket/datawriter/config"
	"github.com/evilsocket/datawriter/writer"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/fs"
	"github.com/evilsocket/islazy/log"
)

var (
	configFile   = flag.String("config", "", "JSON configuration of the writer.")
	inputFile    = flag.String("input", "", "CSV file to save, one record per row.")
	writerType   = flag.String("writer", "", "If filled, overrides the writerType of the configuration.")
	modulesPath  = flag.String("modules", os.Getenv(writer.PathEnv), "Folder of the script writer modules.")
	double       = flag.Bool("double", false, "Use double precision elements.")
	section      = flag.String("section", "features", "Name of the data section.")
	labelColumn  = flag.Int("label-column", -1, "Column holding the record label, -1 for none.")
	labelSection = flag.String("label-section", "labels", "Name of the labels section.")
	batchSize    = flag.Int("batch", 256, "Number of records saved by each call.")
	logDebug     = flag.Bool("debug", false, "Enable debug logs.")
)

func die(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	os.Exit(1)
}

func run[E writer.Element](cfg config.Parameters, ds *dataset) {
	w, err := writer.New[E](cfg, writer.WithLoader(writer.NewLoader(*modulesPath)))
	if err != nil {
		die("%v\n", err)
	}
	defer w.Teardown()

	log.Info("writing with %s (%s) from %s ...", w.Canonical(), w.ElementType(), w.Location())

	started := time.Now()
	saved, err := doImport[E](w, ds, importOptions{
		section:      *section,
		labelSection: *labelSection,
		batchSize:    *batchSize,
	})
	if err != nil {
		log.Error("%v", err)
	}

	log.Info("saved %s records (%s) in %s",
		humanize.Comma(int64(saved)),
		humanize.Bytes(uint64(saved*ds.dim*w.ElementType().Size())),
		time.Since(started))
}

func main() {
	flag.Parse()

	if *logDebug {
		log.Level = log.DEBUG
	}

	if *configFile == "" || *inputFile == "" {
		die("usage: dwriter -config writer.json -input data.csv\n")
	} else if !fs.Exists(*inputFile) {
		die("%s does not exist\n", *inputFile)
	} else if *batchSize <= 0 {
		die("batch size must be positive\n")
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		die("%v\n", err)
	} else if *writerType != "" {
		cfg = cfg.With(writer.TypeKey, *writerType)
	}

	fp, err := os.Open(*inputFile)
	if err != nil {
		die("%v\n", err)
	}
	defer fp.Close()

	log.Info("reading %s ...", *inputFile)
	ds, err := readDataset(fp, *labelColumn)
	if err != nil {
		die("%s: %v\n", *inputFile, err)
	}
	log.Info("%s records of %d values", humanize.Comma(int64(len(ds.records))), ds.dim)

	if *double {
		run[float64](cfg, ds)
	} else {
		run[float32](cfg, ds)
	}
}
