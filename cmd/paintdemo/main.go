// Command paintdemo drives the paint engine the way a touch front end would.
//
// It loads a photograph (or creates a blank canvas), replays a TOML stroke
// script as pointer events, and writes the edited image as PNG and, on
// request, PDF. An optional date stamp is composited after editing.
//
// Usage:
//
//	paintdemo -input photo.jpg -script strokes.toml -output out.png -watermark
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/paint"
)

func main() {
	var (
		input     = flag.String("input", "", "input image (png, jpeg, gif, bmp, tiff, webp); blank canvas if empty")
		width     = flag.Int("width", 640, "blank canvas width")
		height    = flag.Int("height", 480, "blank canvas height")
		bg        = flag.String("bg", "#FFFFFF", "blank canvas color")
		script    = flag.String("script", "", "TOML stroke script")
		output    = flag.String("output", "paint.png", "output PNG file")
		pdfOut    = flag.String("pdf", "", "also export a PDF page to this file")
		preview   = flag.Int("preview", 0, "also write a preview PNG scaled to this width")
		watermark = flag.Bool("watermark", false, "stamp the current date in the bottom-right corner")
		lang      = flag.String("lang", "en", "language for the summary line")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := defaultScript()
	if *script != "" {
		var err error
		if cfg, err = loadScript(*script); err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
	}

	src, err := openSource(*input, *width, *height, *bg)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	s := paint.NewSession(cfg.options()...)
	if err := s.LoadImage(src); err != nil {
		log.Fatalf("Failed to load buffer: %v", err)
	}

	stats, err := cfg.replay(s)
	if err != nil {
		log.Fatalf("Failed to replay script: %v", err)
	}

	out := s.Image()
	if *watermark {
		stampDate(out, time.Now())
	}

	if err := savePNG(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if *preview > 0 {
		if err := savePNG(previewPath(*output), scaleToWidth(out, *preview)); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
	}
	if *pdfOut != "" {
		if err := savePDF(*pdfOut, out); err != nil {
			log.Fatalf("Failed to export PDF: %v", err)
		}
	}

	fmt.Println(summary(*lang, *output, out.Bounds(), stats))
}

// summary formats the result line with locale-aware number grouping.
func summary(lang, path string, bounds image.Rectangle, st replayStats) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("Saved %s (%dx%d): %d strokes, %d undos, %d resets, %d pixels changed",
		path, bounds.Dx(), bounds.Dy(), st.strokes, st.undos, st.resets, st.changed)
}
