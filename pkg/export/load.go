package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/dimchansky/utfbom"

	errs "github.com/followdiff/followdiff/pkg/errors"
)

// Document is the result of loading one export document.
type Document struct {
	// IDs is the canonical identifier set.
	IDs Set

	// Shape tells how the entries sequence was located.
	Shape Shape

	// Key is the matched object key for keyed shapes, empty otherwise.
	Key string

	// Entries is the number of entries examined.
	Entries int

	// Skipped is the number of entries that contributed no identifier.
	// Skips are part of the tolerance policy, not errors.
	Skipped int
}

// Load reads the export file at path and returns its canonical identifiers.
// A missing or unreadable file is a fatal FILE_NOT_FOUND/INPUT_READ error;
// there is no partial-document recovery.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "export file %s not found", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInputRead, err, "open %s", path)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInputRead, err, "read %s", path)
	}
	return doc, nil
}

// Read decodes one export document from r.
// Exports written on some platforms carry a byte order mark; it is stripped
// before decoding.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(utfbom.SkipOnly(r))
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes raw export JSON and collects its canonical identifiers.
// Malformed JSON is a fatal INPUT_READ error.
func Parse(data []byte) (*Document, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInputRead, err, "decode export JSON")
	}
	return Collect(Detect(root)), nil
}

// Collect normalizes every resolvable entry of src into a Document.
// Entries that are not records, that no extractor resolves, or that
// normalize to an empty identifier are skipped.
func Collect(src Source) *Document {
	doc := &Document{
		IDs:     make(Set, len(src.Entries)),
		Shape:   src.Shape,
		Key:     src.Key,
		Entries: len(src.Entries),
	}

	for _, entry := range src.Entries {
		raw, ok := resolve(entry)
		if !ok {
			doc.Skipped++
			continue
		}
		id := Normalize(raw)
		if id == "" {
			doc.Skipped++
			continue
		}
		doc.IDs.Add(id)
	}

	return doc
}
