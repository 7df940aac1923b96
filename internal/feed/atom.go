package feed

import (
	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
)

// atomTranslator keeps <published> and <updated> apart. The default
// translator copies <updated> into Published when <published> is absent,
// which would hide the fetch-time fallback.
type atomTranslator struct {
	gofeed.DefaultAtomTranslator
}

func (t *atomTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	result, err := t.DefaultAtomTranslator.Translate(feed)
	if err != nil {
		return nil, err
	}
	af, ok := feed.(*atom.Feed)
	if !ok || len(af.Entries) != len(result.Items) {
		return result, nil
	}
	for i, entry := range af.Entries {
		if entry.Published == "" {
			result.Items[i].Published = ""
			result.Items[i].PublishedParsed = nil
		}
	}
	return result, nil
}

func newParser() *gofeed.Parser {
	fp := gofeed.NewParser()
	fp.AtomTranslator = &atomTranslator{}
	return fp
}
