package matching

import (
	"regexp"
	"sort"
	"strings"
)

// Category is one taxonomy group. Categories only drive extraction; the
// resulting set does not remember which group a term came from.
type Category struct {
	Name    string
	Pattern *regexp.Regexp
}

func category(name string, terms string) Category {
	return Category{
		Name:    name,
		Pattern: regexp.MustCompile(`(?i)\b(?:` + terms + `)\b`),
	}
}

// Taxonomy is the fixed set of recognized technology and methodology terms.
var Taxonomy = []Category{
	category("languages", `Python|Java|JavaScript|TypeScript|C\+\+|Go|Rust|Ruby|PHP|Swift|Kotlin`),
	category("frameworks", `React|Angular|Vue|Node\.js|Django|Flask|Spring|Express`),
	category("cloud_devops", `AWS|Azure|GCP|Docker|Kubernetes|Jenkins|Git|CI/CD`),
	category("data_stores", `SQL|MySQL|PostgreSQL|MongoDB|Redis|Elasticsearch`),
	category("ml_ai", `Machine Learning|AI|Deep Learning|TensorFlow|PyTorch|NLP`),
	category("methodology", `Agile|Scrum|DevOps|Microservices|REST|API|GraphQL`),
}

// KeywordSet is a deduplicated set of lowercase taxonomy terms.
type KeywordSet map[string]struct{}

// NewKeywordSet builds a set from terms, lowercasing each.
func NewKeywordSet(terms ...string) KeywordSet {
	set := make(KeywordSet, len(terms))
	for _, t := range terms {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}

// Has reports whether term is in the set, ignoring case.
func (s KeywordSet) Has(term string) bool {
	_, ok := s[strings.ToLower(term)]
	return ok
}

// Sorted returns the members in lexical order.
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ExtractKeywords scans text for taxonomy terms. Matching is lexical only:
// no stemming, no synonyms.
func ExtractKeywords(text string) KeywordSet {
	set := KeywordSet{}
	if strings.TrimSpace(text) == "" {
		return set
	}
	for _, c := range Taxonomy {
		for _, m := range c.Pattern.FindAllString(text, -1) {
			set[strings.ToLower(m)] = struct{}{}
		}
	}
	return set
}
