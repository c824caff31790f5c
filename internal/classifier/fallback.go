package classifier

// Minimum issue size before positional fallback kicks in; thin supplements
// rarely have a dedicated ads section.
const fallbackMinPages = 10

// FallbackPages synthesizes candidate ad pages for an issue where no page
// cleared any detection layer. Newspapers park classifieds on the back pages,
// the center spread, or right after the front section, so those positions are
// tried in that order. Returns up to three in-range distinct pages, or nil
// for small documents.
func FallbackPages(totalPages int) []int {
	if totalPages <= fallbackMinPages {
		return nil
	}

	candidates := []int{totalPages, totalPages - 1, totalPages - 2, totalPages / 2, 3, 4}

	seen := make(map[int]bool, len(candidates))
	var pages []int
	for _, p := range candidates {
		if p < 1 || p > totalPages || seen[p] {
			continue
		}
		seen[p] = true
		pages = append(pages, p)
		if len(pages) == 3 {
			break
		}
	}
	return pages
}
