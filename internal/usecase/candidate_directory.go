package usecase

import (
	"context"
	"strings"
	"unicode"

	"go-recruitment-console/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldName lowercases and strips diacritics so "ANA" and "Aná" compare
// equal to "ana".
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// FilterByName keeps candidates whose name contains term, ignoring case
// and accents. A blank term keeps everyone.
func FilterByName(candidates []domain.Candidate, term string) []domain.Candidate {
	term = strings.TrimSpace(term)
	if term == "" {
		return candidates
	}

	needle := foldName(term)
	out := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(foldName(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

type CandidateDirectory struct {
	All      []domain.Candidate
	Filtered []domain.Candidate
	Term     string
}

// LoadCandidateDirectory fetches every candidate and applies the name
// search. A failed fetch notifies and yields an empty directory.
func LoadCandidateDirectory(ctx context.Context, candidates domain.CandidateUsecase, notifier domain.Notifier, term string) *CandidateDirectory {
	dir := &CandidateDirectory{All: []domain.Candidate{}, Term: strings.TrimSpace(term)}

	list, err := candidates.ListAll(ctx)
	if err != nil {
		notifier.Error("Erro ao carregar candidatos: " + err.Error())
	} else if list != nil {
		dir.All = list
	}

	dir.Filtered = FilterByName(dir.All, dir.Term)
	return dir
}
