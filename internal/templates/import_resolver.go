package templates

import (
	"regexp"
	"sort"
	"strings"
)

var symbolPattern = regexp.MustCompile(`\b[A-Z][A-Za-z0-9_]*\b`)

// standardImports maps a used symbol to the type it requires
var standardImports = map[string]string{
	"List":               "java.util.List",
	"Map":                "java.util.Map",
	"Set":                "java.util.Set",
	"Optional":           "java.util.Optional",
	"Date":               "java.util.Date",
	"Autowired":          "org.springframework.beans.factory.annotation.Autowired",
	"Service":            "org.springframework.stereotype.Service",
	"Repository":         "org.springframework.stereotype.Repository",
	"Controller":         "org.springframework.web.bind.annotation.RestController",
	"RestController":     "org.springframework.web.bind.annotation.RestController",
	"GetMapping":         "org.springframework.web.bind.annotation.GetMapping",
	"PostMapping":        "org.springframework.web.bind.annotation.PostMapping",
	"PutMapping":         "org.springframework.web.bind.annotation.PutMapping",
	"DeleteMapping":      "org.springframework.web.bind.annotation.DeleteMapping",
	"RequestMapping":     "org.springframework.web.bind.annotation.RequestMapping",
	"RequestBody":        "org.springframework.web.bind.annotation.RequestBody",
	"RequestParam":       "org.springframework.web.bind.annotation.RequestParam",
	"PathVariable":       "org.springframework.web.bind.annotation.PathVariable",
	"ResponseEntity":     "org.springframework.http.ResponseEntity",
	"JpaRepository":      "org.springframework.data.jpa.repository.JpaRepository",
	"Entity":             "jakarta.persistence.Entity",
	"Table":              "jakarta.persistence.Table",
	"Id":                 "jakarta.persistence.Id",
	"GeneratedValue":     "jakarta.persistence.GeneratedValue",
	"GenerationType":     "jakarta.persistence.GenerationType",
	"Column":             "jakarta.persistence.Column",
	"Data":               "lombok.Data",
	"NoArgsConstructor":  "lombok.NoArgsConstructor",
	"AllArgsConstructor": "lombok.AllArgsConstructor",
}

// ImportResolver computes the import block of a rendered Java file from the
// symbols its code uses. The keyword table is fixed at construction.
type ImportResolver struct {
	table map[string]string
}

// NewImportResolver creates a resolver with the standard keyword table
func NewImportResolver() *ImportResolver {
	table := make(map[string]string, len(standardImports))
	for k, v := range standardImports {
		table[k] = v
	}
	return &ImportResolver{table: table}
}

// Lookup returns the fully qualified type registered for keyword
func (r *ImportResolver) Lookup(keyword string) (string, bool) {
	fq, ok := r.table[keyword]
	return fq, ok
}

// Resolve rewrites the import block of body. Existing import lines are kept,
// table imports are added for used keywords, and candidates (fully qualified
// names) are added when their simple name is used or when they end in ".*".
// The merged block is sorted and placed after the package declaration.
// Resolving an already resolved body returns it unchanged.
func (r *ImportResolver) Resolve(candidates []string, body string) string {
	lines := strings.Split(body, "\n")

	var kept []string
	existing := make(map[string]bool)
	used := make(map[string]bool)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isImportLine(trimmed) {
			existing[trimmed] = true
			continue
		}
		kept = append(kept, line)
		for _, sym := range symbolPattern.FindAllString(line, -1) {
			used[sym] = true
		}
	}

	imports := r.merge(existing, candidates, used)

	pkg := -1
	for i, line := range kept {
		if strings.HasPrefix(strings.TrimSpace(line), "package ") {
			pkg = i
			break
		}
	}

	var out []string
	var rest []string
	if pkg >= 0 {
		out = append(out, kept[:pkg+1]...)
		out = append(out, "")
		rest = trimLeadingBlank(kept[pkg+1:])
	} else {
		if len(imports) == 0 {
			return strings.Join(kept, "\n")
		}
		rest = trimLeadingBlank(kept)
	}

	if len(imports) > 0 {
		out = append(out, imports...)
		if len(rest) > 0 {
			out = append(out, "")
		}
	}
	out = append(out, rest...)

	result := strings.Join(out, "\n")
	if len(rest) == 0 && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}

// merge builds the sorted, deduplicated import lines
func (r *ImportResolver) merge(existing map[string]bool, candidates []string, used map[string]bool) []string {
	all := make(map[string]bool, len(existing))
	for line := range existing {
		all[line] = true
	}

	for keyword, fq := range r.table {
		if used[keyword] {
			all[importLine(fq)] = true
		}
	}

	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if strings.HasSuffix(candidate, ".*") || used[simpleName(candidate)] {
			all[importLine(candidate)] = true
		}
	}

	imports := make([]string, 0, len(all))
	for line := range all {
		imports = append(imports, line)
	}
	sort.Strings(imports)
	return imports
}

// UsedSymbols returns the capitalised identifiers on the non-import lines of body, sorted
func UsedSymbols(body string) []string {
	set := make(map[string]bool)
	for _, line := range strings.Split(body, "\n") {
		if isImportLine(strings.TrimSpace(line)) {
			continue
		}
		for _, sym := range symbolPattern.FindAllString(line, -1) {
			set[sym] = true
		}
	}

	symbols := make([]string, 0, len(set))
	for sym := range set {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

func isImportLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "import ")
}

func importLine(fq string) string {
	return "import " + fq + ";"
}

func simpleName(fq string) string {
	if i := strings.LastIndex(fq, "."); i >= 0 {
		return fq[i+1:]
	}
	return fq
}

func trimLeadingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return lines
}
