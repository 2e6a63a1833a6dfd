package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/contrib/renders/multitemplate"
	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/dataset"
)

// Config holds the form state that survives restarts: the alphabet, the two
// editable probability presets, the selected distribution, and the last
// file paths used for encoding and decoding.
type Config struct {
	Alphabet     string `json:"alphabet"`
	P1           string `json:"p1"`
	P2           string `json:"p2"`
	Distribution string `json:"distribution"`
	EncodeIn     string `json:"encode_in"`
	EncodeOut    string `json:"encode_out"`
	DecodeIn     string `json:"decode_in"`
	DecodeOut    string `json:"decode_out"`

	hufflabConfigDir string
}

func symbolsCSV(symbols []huffcode.Symbol) string {
	parts := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		parts = append(parts, string(symbol))
	}
	return strings.Join(parts, ",")
}

func floatsCSV(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, strconv.FormatFloat(value, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (c *Config) SetDefaults() {
	c.Alphabet = symbolsCSV(dataset.Alphabet())
	c.P1 = floatsCSV(dataset.P1())
	c.P2 = floatsCSV(dataset.P2())
	c.Distribution = "uniform"

	c.EncodeIn = "sequence.txt"
	c.EncodeOut = "encoded.txt"
	c.DecodeIn = "encoded.txt"
	c.DecodeOut = "decoded.txt"
}

func (c *Config) Init() error {
	cfgdir, err := os.UserConfigDir()
	if err != nil {
		return err
	}

	c.hufflabConfigDir = filepath.Join(cfgdir, "hufflab")

	err = os.MkdirAll(c.hufflabConfigDir, 0777)
	if err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}

	return nil
}

func (c *Config) Load() error {
	f, err := os.Open(filepath.Join(c.hufflabConfigDir, "config.json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.SetDefaults()
			return nil
		}

		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	err = dec.Decode(c)
	if err != nil {
		return err
	}

	return nil
}

func (c Config) Save() error {
	f, err := os.OpenFile(filepath.Join(c.hufflabConfigDir, "config.json"), os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	err = enc.Encode(c)
	if err != nil {
		return err
	}

	return nil
}

// ReadDir lists the regular files under dirname, merging the user config
// dir copy over the one next to the binary.  Editor droppings are skipped.
func (c Config) ReadDir(dirname string) ([]string, error) {
	locals := make(map[string]bool)
	entries, err := os.ReadDir(filepath.Join(c.hufflabConfigDir, dirname))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	result := make([]string, 0, len(entries))

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if strings.HasSuffix(entry.Name(), ".swp") || strings.HasPrefix(entry.Name(), ".") || strings.HasSuffix(entry.Name(), "~") {
			continue
		}

		locals[entry.Name()] = true
		result = append(result, filepath.Join(c.hufflabConfigDir, dirname, entry.Name()))
	}

	entries, err = os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if strings.HasSuffix(entry.Name(), ".swp") || strings.HasPrefix(entry.Name(), ".") || strings.HasSuffix(entry.Name(), "~") {
			continue
		}

		if locals[entry.Name()] {
			continue
		}

		result = append(result, filepath.Join(dirname, entry.Name()))
	}

	return result, nil
}

// InitAssetsTemplates wires the multitemplate renderer.  Template files
// whose names start with "_" are partials, parsed first and grafted into
// every page template.  Files under assets/ are served by base name.
func (c Config) InitAssetsTemplates(r *gin.Engine) error {
	var err error
	var data []byte
	var tmpl *template.Template

	var names, pnames []string

	templateFiles, err := c.ReadDir("templates")
	if err != nil {
		return err
	}
	for _, name := range templateFiles {
		if strings.HasPrefix(filepath.Base(name), "_") {
			pnames = append(pnames, name)
		} else {
			names = append(names, name)
		}
	}

	render := multitemplate.New()
	ptmpls := make(map[string]*template.Template)
	for _, pname := range pnames {
		if data, err = os.ReadFile(pname); err != nil {
			return fmt.Errorf("cannot open partial template %q: %w", pname, err)
		}
		pname = strings.TrimSuffix(filepath.Base(pname), ".html")
		if tmpl, err = template.New(pname).Parse(string(data)); err != nil {
			return fmt.Errorf("cannot parse template %q: %w", pname, err)
		}
		ptmpls[pname] = tmpl
	}
	for _, name := range names {
		if data, err = os.ReadFile(name); err != nil {
			return fmt.Errorf("cannot open template %q: %w", name, err)
		}
		if tmpl, err = template.New(filepath.Base(name)).Parse(string(data)); err != nil {
			return fmt.Errorf("cannot parse template %q: %w", name, err)
		}
		for pname, ptmpl := range ptmpls {
			tmpl.AddParseTree(pname, ptmpl.Tree)
		}
		render.Add(filepath.Base(name), tmpl)
	}
	r.HTMLRender = render

	assetFiles, err := c.ReadDir("assets")
	if err != nil {
		return err
	}
	for _, name := range assetFiles {
		name := name
		r.GET(filepath.Base(name), func(c *gin.Context) {
			c.File(name)
		})
	}
	return nil
}
