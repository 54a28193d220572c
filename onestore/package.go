package onestore

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/onelog"
	"github.com/onenote-go/onenote/reader"
)

// Options controls how a Package is opened and parsed: Strict governs
// the unknown-DataElement-type policy, Logger lets a caller supply its
// own go-kratos logger in place of the stderr default.
type Options struct {
	// Strict aborts the parse on an unrecognized DataElement type
	// instead of skipping it by length and continuing. False by default,
	// favoring a keep-going-and-report-anomalies stance.
	Strict bool

	// Logger receives diagnostic messages during Parse. Defaults to a
	// stderr logger filtered to error level when nil.
	Logger onelog.Logger
}

// Package is an open legacy OneStore file (.one/.onetoc2): the raw bytes
// plus, once Parse succeeds, the decoded Packaging envelope.
type Package struct {
	data   mmap.MMap
	f      *os.File
	bytes  []byte
	opts   Options
	logger *onelog.Helper

	packaging *fsshttpb.Packaging
}

// Open memory-maps the file at path for the duration of Parse and all
// subsequent reads. Close unmaps it.
func Open(path string, opts Options) (*Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	p := &Package{data: data, f: f, bytes: data, opts: opts}
	p.initLogger()
	return p, nil
}

// OpenBytes wraps an in-memory buffer, bypassing mmap entirely; used by
// tests and the fuzz entry point.
func OpenBytes(data []byte, opts Options) (*Package, error) {
	p := &Package{bytes: data, opts: opts}
	p.initLogger()
	return p, nil
}

func (p *Package) initLogger() {
	if p.opts.Logger == nil {
		p.logger = onelog.NewStdLogger()
	} else {
		p.logger = onelog.NewHelper(p.opts.Logger)
	}
}

// Close releases the underlying mmap and file handle, if any. Safe to
// call on a Package built with OpenBytes.
func (p *Package) Close() error {
	if p.data != nil {
		if err := p.data.Unmap(); err != nil {
			return err
		}
	}
	if p.f != nil {
		return p.f.Close()
	}
	return nil
}

// Parse decodes the top-level Packaging envelope: the four identifying
// GUIDs, the root StorageIndex reference, and the nested
// DataElementPackage carrying every cell's manifests and object groups.
func (p *Package) Parse() error {
	r := reader.New(p.bytes)
	packaging, err := fsshttpb.ParsePackaging(r, p.opts.Strict)
	if err != nil {
		if logErr, ok := err.(*errs.Error); ok {
			p.logger.Errorw(append([]interface{}{"message", "packaging parse failed"}, onelog.Fields(logErr)...)...)
		}
		return err
	}
	p.packaging = packaging
	return nil
}

// RootObjectSpace resolves the StorageIndex -> root CellManifest ->
// RevisionManifest -> object-group chain into the assembled ObjectSpace
// for the file's root cell. Parse must have succeeded first.
//
// guidTable accumulation across a whole document is not modeled here:
// this module's ExGUID compact forms resolve against a table supplied
// at the point of use rather than one that grows as the stream is
// read. RootObjectSpace builds that table from the GUIDs the Packaging
// envelope itself names, which is sufficient for the common case of a
// single-section file whose root cell's compact ExGUIDs and CompactIDs
// reference only those GUIDs.
func (p *Package) RootObjectSpace() (*ObjectSpace, error) {
	if p.packaging == nil {
		return nil, errs.New(errs.MalformedOneStore, "Package.Parse must succeed before RootObjectSpace")
	}

	guidTable := []guid.GUID{
		p.packaging.FileType,
		p.packaging.File,
		p.packaging.LegacyFileVersion,
		p.packaging.FileFormat,
		p.packaging.CellSchema,
	}

	space, err := BuildObjectSpace(p.packaging.DataElementPackage, p.packaging.StorageIndex, fsshttpb.CellID{}, guidTable)
	if err != nil {
		if logErr, ok := err.(*errs.Error); ok {
			p.logger.Errorw(append([]interface{}{"message", "root object space assembly failed"}, onelog.Fields(logErr)...)...)
		} else {
			p.logger.Errorw("message", "root object space assembly failed", "error", err.Error())
		}
		return nil, err
	}
	return space, nil
}
