package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"

	gotabular "github.com/reoring/gotabular"
	"github.com/reoring/gotabular/source"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "infer":
		inferCmd(os.Args[2:])
	case "parse":
		parseCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gotabular CLI\n\nUsage:\n  gotabular infer -in data.csv [-format csv|json|yaml] [-strict]\n  gotabular parse -in data.csv [-format csv|json|yaml] [-types types.json] [-parallel N]\n\nNotes:\n  - infer prints the guessed column -> type map as JSON.\n  - parse prints {dataset, dataTypes, errors} and exits 1 when any cell failed.")
}

func inferCmd(args []string) {
	fs := flag.NewFlagSet("infer", flag.ExitOnError)
	var in, format string
	var strict bool
	fs.StringVar(&in, "in", "", "input dataset file")
	fs.StringVar(&format, "format", "", "input format: csv, json or yaml (default: by extension)")
	fs.BoolVar(&strict, "strict", false, "skip JSON literal reinterpretation of strings")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data := loadDataset(in, format)
	emitJSON(gotabular.InferTypes(data, strict))
}

func parseCmd(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var in, format, typesPath string
	var parallel int
	fs.StringVar(&in, "in", "", "input dataset file")
	fs.StringVar(&format, "format", "", "input format: csv, json or yaml (default: by extension)")
	fs.StringVar(&typesPath, "types", "", "JSON file with a column -> type map (default: inferred)")
	fs.IntVar(&parallel, "parallel", 0, "max rows converted concurrently")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data := loadDataset(in, format)
	var types gotabular.TypeMap
	if typesPath != "" {
		raw, err := os.ReadFile(typesPath)
		if err != nil {
			fatalf("reading types: %v", err)
		}
		if err := gojson.Unmarshal(raw, &types); err != nil {
			fatalf("decoding types: %v", err)
		}
	}

	res := gotabular.ParseDataset(data, types, gotabular.ParseOpt{Parallelism: parallel})
	emitJSON(res)
	if len(res.Errors) > 0 {
		os.Exit(1)
	}
}

func loadDataset(path, format string) gotabular.Dataset {
	if format == "" {
		format = strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	}
	f, err := os.Open(path)
	if err != nil {
		fatalf("opening input: %v", err)
	}
	defer f.Close()

	var ds gotabular.Dataset
	switch format {
	case "csv":
		ds, err = source.CSVReader(f)
	case "json":
		ds, err = source.JSONReader(f)
	case "yaml", "yml":
		var raw []byte
		if raw, err = io.ReadAll(f); err == nil {
			ds, err = source.YAMLBytes(raw)
		}
	default:
		fatalf("unsupported format %q (want csv, json or yaml)", format)
	}
	if err != nil {
		fatalf("%v", err)
	}
	return ds
}

func emitJSON(v any) {
	out, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("encoding output: %v", err)
	}
	fmt.Println(string(out))
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
