package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"golang.org/x/net/websocket"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/seqfile"
)

var log = logging.MustGetLogger("hufflab")

const progName = "hufflab"
const listenAddr = "localhost:8671"

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()
	for _, arg := range os.Args[1:] {
		if arg == "-debug" || arg == "--debug" {
			leveledLogBackend.SetLevel(logging.DEBUG, "")
		}
	}

	if len(os.Args) > 0 {
		dir, _ := filepath.Split(os.Args[0])
		if dir != "" {
			err := os.Chdir(dir)
			if err != nil {
				log.Fatalf("cannot cd into %q: %s", dir, err)
			}
		}
	}

	config := &Config{}
	err := config.Init()
	if err != nil {
		log.Fatalf("cannot init config system: %s", err)
	}
	err = config.Load()
	if err != nil {
		log.Fatalf("error loading config file: %s", err)
	}

	lab := NewLab()
	if cb, err := buildFromConfig(config, lab); err != nil {
		log.Warningf("stored settings do not build a code: %s", err)
	} else {
		lab.SetCode(cb)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	if err := config.InitAssetsTemplates(r); err != nil {
		log.Fatalf("cannot init templates: %s", err)
	}

	r.POST("/codes", func(c *gin.Context) {
		var p struct {
			Alphabet     string `form:"alphabet"`
			P1           string `form:"p1"`
			P2           string `form:"p2"`
			Distribution string `form:"distribution"`
		}

		if err := c.ShouldBind(&p); err != nil {
			c.AbortWithError(http.StatusBadRequest, err)
			return
		}

		config.Alphabet = p.Alphabet
		config.P1 = p.P1
		config.P2 = p.P2
		config.Distribution = p.Distribution

		cb, err := buildFromConfig(config, lab)
		if err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": err.Error()})
			return
		}

		lab.SetCode(cb)
		lab.Logf("built a code for %d symbols, codeword lengths %d .. %d",
			cb.Len(), cb.MinLength(), cb.MaxLength())

		if err := config.Save(); err != nil {
			log.Errorf("cannot save config: %s", err)
		}

		c.Redirect(http.StatusFound, "/?tab=codes")
	})

	r.POST("/encode", func(c *gin.Context) {
		var p struct {
			In  string `form:"in"`
			Out string `form:"out"`
		}

		if err := c.ShouldBind(&p); err != nil {
			c.AbortWithError(http.StatusBadRequest, err)
			return
		}

		cb, err := buildFromConfig(config, lab)
		if err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": err.Error()})
			return
		}
		lab.SetCode(cb)

		text, err := seqfile.Read(p.In)
		if err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": err.Error()})
			return
		}
		if text == "" {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": fmt.Sprintf("input file %q is empty", p.In)})
			return
		}

		seq := huffcode.Symbols(text)
		bits, err := cb.Encode(seq)
		if err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": err.Error()})
			return
		}
		if err := seqfile.Write(p.Out, bits); err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": err.Error()})
			return
		}

		lab.Logf("encoded %d symbols from %s into %d bits in %s, compression ratio %.4f",
			len(seq), p.In, len(bits), p.Out, huffcode.CompressionRatio(len(seq), len(bits)))

		config.EncodeIn = p.In
		config.EncodeOut = p.Out
		if err := config.Save(); err != nil {
			log.Errorf("cannot save config: %s", err)
		}

		c.Redirect(http.StatusFound, "/?tab=encode")
	})

	r.POST("/decode", func(c *gin.Context) {
		var p struct {
			In  string `form:"in"`
			Out string `form:"out"`
		}

		if err := c.ShouldBind(&p); err != nil {
			c.AbortWithError(http.StatusBadRequest, err)
			return
		}

		cb, err := buildFromConfig(config, lab)
		if err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": err.Error()})
			return
		}
		lab.SetCode(cb)

		bits, err := seqfile.Read(p.In)
		if err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": err.Error()})
			return
		}
		if bits == "" {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": fmt.Sprintf("input file %q is empty", p.In)})
			return
		}

		seq, err := cb.Decode(bits)
		if err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": err.Error()})
			return
		}
		if err := seqfile.Write(p.Out, huffcode.Join(seq)); err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"Error": err.Error()})
			return
		}

		lab.Logf("decoded %d bits from %s into %d symbols in %s",
			len(bits), p.In, len(seq), p.Out)

		config.DecodeIn = p.In
		config.DecodeOut = p.Out
		if err := config.Save(); err != nil {
			log.Errorf("cannot save config: %s", err)
		}

		c.Redirect(http.StatusFound, "/?tab=decode")
	})

	r.GET("/", func(c *gin.Context) {
		tab := c.Query("tab")
		if tab == "" {
			tab = "codes"
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Tab":    tab,
			"Config": config,
			"Lab":    lab.View(),
		})
	})

	r.GET("/log/ws", func(c *gin.Context) {
		handler := websocket.Handler(func(ws *websocket.Conn) {
			defer ws.Close()
			enc := json.NewEncoder(ws)
			ch := lab.Subscribe()
			for {
				select {
				case <-c.Request.Context().Done():
					return
				case event := <-ch:
					err := enc.Encode(event)
					if err != nil {
						log.Errorf("cannot push log event: %s", err)
						return
					}
				}
			}
		})
		handler.ServeHTTP(c.Writer, c.Request)
	})

	l, err := net.Listen("tcp", listenAddr)
	if err != nil {
		log.Panic(err)
	}

	log.Infof("starting up a server on http://%s/", listenAddr)
	go func() {
		switch runtime.GOOS {
		case "linux":
			exec.Command("xdg-open", "http://"+listenAddr+"/").Start()
		case "windows":
			exec.Command(
				"rundll32",
				"url.dll,FileProtocolHandler",
				"http://"+listenAddr+"/",
			).Start()
		case "darwin":
			exec.Command("open", "http://"+listenAddr+"/").Start()
		}
	}()
	log.Panic(r.RunListener(l))
}
