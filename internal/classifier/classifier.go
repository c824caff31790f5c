// Package classifier decides whether a newspaper page carries advertisements.
// Detection is layered: OCR keyword matching first (cheap, offline), then a
// vision model verdict, then a combined low-confidence rescue, then visual
// line heuristics, and finally page position. The first layer to clear its
// threshold wins.
package classifier

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/dzadsearch/ads-ingest/constants"
	"github.com/dzadsearch/ads-ingest/internal/ocr"
	"github.com/dzadsearch/ads-ingest/internal/vision"
)

// Source names the detection layer that produced a classification.
type Source string

const (
	SourceOCR        Source = "OCR"
	SourceVision     Source = "VISION"
	SourceHeuristic  Source = "HEURISTIC"
	SourcePositional Source = "POSITIONAL"
)

// Detection thresholds. Deliberately permissive: a missed ad page costs a
// whole page of announcements, a false positive only costs one vision call
// downstream.
const (
	ocrConfidencePerKeyword = 20
	ocrAcceptThreshold      = 20
	visionAcceptThreshold   = 30
	combinedAcceptThreshold = 15
	heuristicLineThreshold  = 10
	positionalPageThreshold = 15

	// DefaultScanPageCap bounds how many leading pages of an issue are
	// classified.
	DefaultScanPageCap = 30
)

// PageClassification is the verdict for a single page.
type PageClassification struct {
	Page        int
	ContainsAds bool
	Confidence  int // 0..100
	Source      Source
	Evidence    []string // matched keywords for OCR hits
}

// PageAnalyzer is the vision-model dependency, satisfied by *vision.Client.
type PageAnalyzer interface {
	Enabled() bool
	ClassifyPage(ctx context.Context, imagePath string) (vision.PageVerdict, error)
}

// Classifier runs the layered detection over page images.
type Classifier struct {
	text    ocr.TextExtractor
	vision  PageAnalyzer
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New wires the detection layers. Either dependency may be nil; the matching
// layer is skipped. The limiter paces per-page work so a big batch does not
// hammer the OCR binary and the vision API back to back.
func New(text ocr.TextExtractor, analyzer PageAnalyzer, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		text:    text,
		vision:  analyzer,
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		logger:  logger,
	}
}

// Classify runs the layers in order over one page image. pageNum is 1-based.
func (c *Classifier) Classify(ctx context.Context, imagePath string, pageNum int) PageClassification {
	if err := c.limiter.Wait(ctx); err != nil {
		return PageClassification{Page: pageNum}
	}

	// Layer 1: OCR keyword scan.
	ocrConf := 0
	var matched []string
	if c.text != nil {
		text, err := c.text.ExtractText(ctx, imagePath)
		if err != nil {
			c.logger.Warn("classifier.ocr_skipped", "page", pageNum, "error", err)
		} else {
			matched = matchIndicators(text)
			ocrConf = min(100, len(matched)*ocrConfidencePerKeyword)
			if len(matched) > 0 && ocrConf >= ocrAcceptThreshold {
				c.logger.Info("classifier.ocr_hit", "page", pageNum, "confidence", ocrConf, "indicators", matched)
				return PageClassification{
					Page: pageNum, ContainsAds: true,
					Confidence: ocrConf, Source: SourceOCR, Evidence: matched,
				}
			}
		}
	}

	// Layer 2: vision model verdict.
	visionConf := 0
	visionDetected := false
	if c.vision != nil && c.vision.Enabled() {
		verdict, err := c.vision.ClassifyPage(ctx, imagePath)
		if err != nil {
			c.logger.Warn("classifier.vision_skipped", "page", pageNum, "error", err)
		} else {
			visionConf = verdict.Confidence
			visionDetected = verdict.ContainsAds
			if visionDetected && visionConf >= visionAcceptThreshold {
				c.logger.Info("classifier.vision_hit", "page", pageNum, "confidence", visionConf)
				return PageClassification{
					Page: pageNum, ContainsAds: true,
					Confidence: visionConf, Source: SourceVision,
				}
			}
		}

		// Layer 3: two weak signals beat one. Take the stronger confidence;
		// the rescue is attributed to the vision layer that triggered it.
		if len(matched) > 0 || visionDetected {
			combined := max(ocrConf, visionConf)
			if combined >= combinedAcceptThreshold {
				c.logger.Info("classifier.combined_hit", "page", pageNum, "confidence", combined)
				return PageClassification{
					Page: pageNum, ContainsAds: true,
					Confidence: combined, Source: SourceVision, Evidence: matched,
				}
			}
		}
	}

	// Layer 4: visual layout heuristics.
	if lines, ok := detectLineGrid(imagePath); ok {
		conf := min(100, lines*5)
		c.logger.Info("classifier.heuristic_hit", "page", pageNum, "lines", lines, "confidence", conf)
		return PageClassification{
			Page: pageNum, ContainsAds: true,
			Confidence: conf, Source: SourceHeuristic,
		}
	}

	// Layer 5: back pages of a newspaper usually carry the classifieds.
	if pageNum >= positionalPageThreshold {
		c.logger.Info("classifier.positional_hit", "page", pageNum)
		return PageClassification{
			Page: pageNum, ContainsAds: true,
			Source: SourcePositional,
		}
	}

	return PageClassification{Page: pageNum}
}

// matchIndicators returns every ad-indicator keyword present in the text,
// preserving lexicon order so confidence is deterministic.
func matchIndicators(text string) []string {
	var found []string
	for _, indicator := range constants.AdIndicators {
		if strings.Contains(text, indicator) {
			found = append(found, indicator)
		}
	}
	return found
}
