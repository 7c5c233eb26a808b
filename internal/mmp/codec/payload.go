// Package codec embeds marketplace records in OP_RETURN outputs and parses them back.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

// Marker prefixes every marketplace payload.
var Marker = []byte("MMPJ")

// Version is the only payload layout understood by this package.
const Version byte = 0x01

// Kind distinguishes the record carried by a payload.
type Kind byte

const (
	KindJobPosting     Kind = 0x01
	KindJobApplication Kind = 0x02
)

func (k Kind) String() string {
	switch k {
	case KindJobPosting:
		return "job_posting"
	case KindJobApplication:
		return "job_application"
	default:
		return fmt.Sprintf("kind(%#x)", byte(k))
	}
}

const (
	headerLen           = 6 // marker, version, kind
	compressedPubKeyLen = 33
)

// MaxFieldSize is the largest string field, in bytes, that Decode accepts.
// Encoding refuses larger fields.
const MaxFieldSize = 1 << 16

var (
	// ErrNotJobPayload is returned for data that does not carry the marker.
	ErrNotJobPayload = errors.New("not a marketplace payload")
	// ErrUnsupportedPayload is returned for an unknown version or kind.
	ErrUnsupportedPayload = errors.New("unsupported marketplace payload")
	// ErrTrailingData is returned when bytes remain after the last field.
	ErrTrailingData = errors.New("trailing data after marketplace payload")
	// ErrFieldTooLarge is returned when a string field exceeds MaxFieldSize.
	ErrFieldTooLarge = errors.New("marketplace payload field too large")
)

// Payload is a decoded marketplace record. Exactly one of Posting and
// Application is set, according to Kind.
type Payload struct {
	Kind        Kind
	Posting     *model.JobPosting
	Application *model.JobApplication
}

// EncodeJobPosting serializes a job posting payload.
func EncodeJobPosting(p model.JobPosting) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, KindJobPosting)

	w := fieldWriter{w: &buf}
	w.hash(p.JobID)
	w.str(p.Title)
	w.str(p.Description)
	w.int64(int64(p.Amount))
	w.uint32(p.TimeoutBlocks)
	w.str(p.Requirements)
	w.str(p.Deliverables)
	if w.err != nil {
		return nil, fmt.Errorf("encode job posting: %w", w.err)
	}
	return buf.Bytes(), nil
}

// EncodeJobApplication serializes a job application payload.
func EncodeJobApplication(a model.JobApplication) ([]byte, error) {
	if a.WorkerKey == nil {
		return nil, errors.New("encode job application: worker key is required")
	}
	var buf bytes.Buffer
	writeHeader(&buf, KindJobApplication)

	w := fieldWriter{w: &buf}
	w.hash(a.JobID)
	w.str(a.Proposal)
	w.bytes(a.WorkerKey.SerializeCompressed())
	if w.err != nil {
		return nil, fmt.Errorf("encode job application: %w", w.err)
	}
	return buf.Bytes(), nil
}

// HasMarker reports whether data starts with the marketplace marker.
func HasMarker(data []byte) bool {
	return bytes.HasPrefix(data, Marker)
}

// Decode parses a payload produced by EncodeJobPosting or EncodeJobApplication.
func Decode(data []byte) (*Payload, error) {
	if !HasMarker(data) {
		return nil, ErrNotJobPayload
	}
	if len(data) < headerLen {
		return nil, fmt.Errorf("%w: short header", ErrUnsupportedPayload)
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: version %#x", ErrUnsupportedPayload, data[4])
	}

	r := fieldReader{r: bytes.NewReader(data[headerLen:])}
	kind := Kind(data[5])
	payload := &Payload{Kind: kind}

	switch kind {
	case KindJobPosting:
		var p model.JobPosting
		p.JobID = r.hash()
		p.Title = r.str()
		p.Description = r.str()
		p.Amount = btcutil.Amount(r.int64())
		p.TimeoutBlocks = r.uint32()
		p.Requirements = r.str()
		p.Deliverables = r.str()
		payload.Posting = &p
	case KindJobApplication:
		var a model.JobApplication
		a.JobID = r.hash()
		a.Proposal = r.str()
		key := r.bytes(compressedPubKeyLen)
		if r.err == nil {
			a.WorkerKey, r.err = btcec.ParsePubKey(key)
		}
		payload.Application = &a
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPayload, kind)
	}

	if r.err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, r.err)
	}
	if r.r.Len() > 0 {
		return nil, fmt.Errorf("decode %s: %w", kind, ErrTrailingData)
	}
	return payload, nil
}

func writeHeader(buf *bytes.Buffer, kind Kind) {
	buf.Write(Marker)
	buf.WriteByte(Version)
	buf.WriteByte(byte(kind))
}

// fieldWriter keeps the first error so fields can be written back to back.
type fieldWriter struct {
	w   io.Writer
	err error
}

func (f *fieldWriter) hash(h chainhash.Hash) {
	if f.err == nil {
		_, f.err = f.w.Write(h[:])
	}
}

func (f *fieldWriter) str(s string) {
	if f.err != nil {
		return
	}
	if len(s) > MaxFieldSize {
		f.err = fmt.Errorf("%w: %d bytes", ErrFieldTooLarge, len(s))
		return
	}
	f.err = wire.WriteVarString(f.w, 0, s)
}

func (f *fieldWriter) bytes(b []byte) {
	if f.err == nil {
		f.err = wire.WriteVarBytes(f.w, 0, b)
	}
}

func (f *fieldWriter) int64(v int64) {
	if f.err == nil {
		f.err = binary.Write(f.w, binary.LittleEndian, v)
	}
}

func (f *fieldWriter) uint32(v uint32) {
	if f.err == nil {
		f.err = binary.Write(f.w, binary.LittleEndian, v)
	}
}

// fieldReader mirrors fieldWriter.
type fieldReader struct {
	r   *bytes.Reader
	err error
}

func (f *fieldReader) hash() chainhash.Hash {
	var h chainhash.Hash
	if f.err == nil {
		_, f.err = io.ReadFull(f.r, h[:])
	}
	return h
}

func (f *fieldReader) str() string {
	if f.err != nil {
		return ""
	}
	b, err := wire.ReadVarBytes(f.r, 0, MaxFieldSize, "string")
	if err != nil {
		f.err = err
		return ""
	}
	return string(b)
}

func (f *fieldReader) bytes(maxLen uint32) []byte {
	if f.err != nil {
		return nil
	}
	b, err := wire.ReadVarBytes(f.r, 0, maxLen, "bytes")
	if err != nil {
		f.err = err
		return nil
	}
	return b
}

func (f *fieldReader) int64() int64 {
	var v int64
	if f.err == nil {
		f.err = binary.Read(f.r, binary.LittleEndian, &v)
	}
	return v
}

func (f *fieldReader) uint32() uint32 {
	var v uint32
	if f.err == nil {
		f.err = binary.Read(f.r, binary.LittleEndian, &v)
	}
	return v
}
