package classifier

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Edge pixels brighter than this count toward a line.
const edgeThreshold = 200

// detectLineGrid looks for the boxed grid layout typical of classified-ad
// pages: many horizontal or vertical rules spanning at least half the page.
// Returns the number of such rules and whether it clears the threshold.
// Any decode problem reports no signal.
func detectLineGrid(imagePath string) (int, bool) {
	f, err := os.Open(imagePath)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, false
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 || h < 2 {
		return 0, false
	}

	// Grayscale plane, then per-pixel edge strength from neighbor deltas.
	gray := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// Rec. 601 luma, 16-bit channels down to 8.
			gray[y*w+x] = uint8((299*r + 587*g + 114*bl) / 1000 >> 8)
		}
	}

	rowEdges := make([]int, h)
	colEdges := make([]int, w)
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			g := int(gray[y*w+x])
			dx := abs(int(gray[y*w+x+1]) - g)
			dy := abs(int(gray[(y+1)*w+x]) - g)
			if max(dx, dy) > edgeThreshold {
				rowEdges[y]++
				colEdges[x]++
			}
		}
	}

	// A rule must span at least half the page to count.
	lines := 0
	for _, n := range rowEdges {
		if n > w/2 {
			lines++
		}
	}
	hLines := lines
	for _, n := range colEdges {
		if n > h/2 {
			lines++
		}
	}
	vLines := lines - hLines

	if hLines > heuristicLineThreshold || vLines > heuristicLineThreshold {
		return lines, true
	}
	return lines, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
