package serviceImp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"cropcare/entities"
	"cropcare/pkg/guide/repository"
	"cropcare/pkg/guide/service"
)

const chunkRunes = 1000

var ErrEmptyDocument = errors.New("guide document has no text")

const defaultMaxPageBytes = 1500000

type Svc struct {
	r        repository.GuideRepository
	allow    map[string]bool
	maxBytes int
	httpc    *http.Client
}

// New builds the guide service. URL imports are limited to the allowed
// hosts and to maxBytes per page.
func New(r repository.GuideRepository, allowed []string, maxBytes int) service.GuideService {
	allow := map[string]bool{}
	for _, h := range allowed {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allow[h] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxPageBytes
	}
	return &Svc{r: r, allow: allow, maxBytes: maxBytes, httpc: &http.Client{Timeout: 20 * time.Second}}
}

// chunkText cuts text into pieces of at least maxRunes runes, breaking only
// on newlines so paragraphs stay whole.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = chunkRunes
	}
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(ctx context.Context, title, tags, text, sourceURL string) (*entities.GuideDoc, int, error) {
	chs := chunkText(text, chunkRunes)
	if len(chs) == 0 {
		return nil, 0, ErrEmptyDocument
	}
	d := &entities.GuideDoc{Title: title, Tags: tags, SourceURL: sourceURL}
	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		rows[i] = entities.GuideChunk{Ord: i, Text: chs[i]}
	}
	if err := s.r.CreateDoc(ctx, d, rows); err != nil {
		return nil, 0, err
	}
	log.Printf("[guide] stored doc=%d title=%q chunks=%d", d.DocID, d.Title, len(rows))
	return d, len(rows), nil
}

// ImportURL fetches an allow-listed page and stores its main text. A
// non-empty title overrides the page's own.
func (s *Svc) ImportURL(ctx context.Context, rawURL, title, tags string) (*entities.GuideDoc, int, error) {
	if err := s.checkURL(rawURL); err != nil {
		return nil, 0, err
	}
	text, pageTitle, err := s.fetchPage(ctx, rawURL)
	if err != nil {
		log.Printf("[guide] import %s: %v", rawURL, err)
		return nil, 0, err
	}
	if title == "" {
		title = pageTitle
	}
	return s.UpsertDocument(ctx, title, tags, text, rawURL)
}

// score counts how many query terms a chunk contains; a full phrase match
// outranks any number of single terms.
func score(text string, phrase string, terms []string) float64 {
	low := strings.ToLower(text)
	sc := 0.0
	if strings.Contains(low, phrase) {
		sc += float64(len(terms) + 1)
	}
	for _, t := range terms {
		if strings.Contains(low, t) {
			sc++
		}
	}
	return sc
}

// Search returns up to k chunks matching the query, best first. Chunks
// with no matching term are never returned.
func (s *Svc) Search(ctx context.Context, query string, k int) ([]entities.GuideChunk, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || k <= 0 {
		return nil, nil
	}
	chunks, err := s.r.AllChunks(ctx)
	if err != nil {
		return nil, err
	}
	terms := strings.Fields(q)

	type scored struct {
		ch entities.GuideChunk
		sc float64
	}
	var list []scored
	for _, ch := range chunks {
		if sc := score(ch.Text, q, terms); sc > 0 {
			list = append(list, scored{ch, sc})
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.GuideChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *Svc) DocsMeta(ctx context.Context, ids []uint) (map[uint]entities.GuideDoc, error) {
	return s.r.DocsByIDs(ctx, ids)
}

func (s *Svc) Docs(ctx context.Context) ([]entities.GuideDoc, error) {
	return s.r.ListDocs(ctx)
}

// Related lists up to k distinct documents whose text mentions name.
func (s *Svc) Related(ctx context.Context, name string, k int) ([]entities.GuideRef, error) {
	chunks, err := s.Search(ctx, name, k*4)
	if err != nil || len(chunks) == 0 {
		return nil, err
	}
	var ids []uint
	seen := map[uint]bool{}
	for _, ch := range chunks {
		if !seen[ch.DocID] && len(ids) < k {
			seen[ch.DocID] = true
			ids = append(ids, ch.DocID)
		}
	}
	meta, err := s.r.DocsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	refs := make([]entities.GuideRef, 0, len(ids))
	for _, id := range ids {
		if d, ok := meta[id]; ok {
			refs = append(refs, entities.GuideRef{DocID: d.DocID, Title: d.Title, SourceURL: d.SourceURL})
		}
	}
	return refs, nil
}
