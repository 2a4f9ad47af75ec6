package enrzones

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// SourceType maps a source-type code from the document (e.g. "D", "ZIT")
// to the airspace type and an optional local type.
type SourceType struct {
	Type      string `json:"type" yaml:"type"`
	LocalType string `json:"localType,omitempty" yaml:"local_type"`
}

// Source records where a record was found, for traceability.
type Source struct {
	Document string `json:"document"`
	Digest   string `json:"digest,omitempty"`
	Section  string `json:"section,omitempty"`
	Position string `json:"position,omitempty"`
}

// String returns e.g. "ENR-5.1.html#line 42".
func (s Source) String() string {
	if s.Position == "" {
		return s.Document
	}
	return s.Document + "#" + s.Position
}

// Airspace is a named, typed volume such as a danger, prohibited,
// or restricted area.
type Airspace struct {
	ID        string `json:"id"`
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	LocalType string `json:"localType,omitempty"`

	Region     string `json:"region"`
	SourceType string `json:"sourceType"`
	LocalID    string `json:"localId"`

	Geometry Geometry `json:"geometry"`

	// Layers keeps insertion order; Layers[0] carries the timetable
	// and remarks.
	Layers []*Layer `json:"layers"`

	Source Source `json:"source"`
}

// NewAirspace builds an airspace from the identity fields of a header row.
// The display name is composed as "<region>-<source type><local id> <name>".
func NewAirspace(region, sourceType, localID, name string, st SourceType) *Airspace {
	a := &Airspace{
		Name:       strings.TrimSpace(fmt.Sprintf("%s-%s%s %s", region, sourceType, localID, name)),
		Type:       st.Type,
		LocalType:  st.LocalType,
		Region:     region,
		SourceType: sourceType,
		LocalID:    localID,
	}
	key := a.identity()
	a.ID = fmt.Sprintf("%016X", xxhash.Sum64String(key))[:8]
	a.UUID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
	return a
}

func (a *Airspace) identity() string {
	return strings.Join([]string{a.Type, a.LocalType, a.Region, a.SourceType, a.LocalID}, "|")
}

// Key returns the (type, id) pair used for deduplication.
func (a *Airspace) Key() AirspaceKey {
	return AirspaceKey{Type: a.Type, ID: a.ID}
}

// Header returns a copy carrying identity and provenance only: no
// geometry and no layers.
func (a *Airspace) Header() *Airspace {
	return &Airspace{
		ID:         a.ID,
		UUID:       a.UUID,
		Name:       a.Name,
		Type:       a.Type,
		LocalType:  a.LocalType,
		Region:     a.Region,
		SourceType: a.SourceType,
		LocalID:    a.LocalID,
		Source:     a.Source,
	}
}

// AddLayer appends a layer. The geometry must be closed first.
func (a *Airspace) AddLayer(l *Layer) error {
	if !a.Geometry.IsClosed() {
		return Errorf(EINVALID, "geometry is not closed")
	}
	a.Layers = append(a.Layers, l)
	return nil
}

// Validate returns an error if the airspace is not fit for output.
func (a *Airspace) Validate() error {
	if a.Type == "" {
		return Errorf(EINVALID, "airspace type required")
	}
	if !a.Geometry.IsClosed() {
		return Errorf(EINVALID, "geometry is not closed")
	}
	if len(a.Layers) == 0 {
		return Errorf(EINVALID, "airspace layer required")
	}
	if a.Layers[0].Timetable == nil {
		return Errorf(EINVALID, "airspace timetable required")
	}
	return nil
}

// AirspaceKey identifies an airspace in an AirspaceSet.
type AirspaceKey struct {
	Type string
	ID   string
}

// AirspaceSet is an insertion-ordered collection of airspaces that holds
// at most one member per key.
type AirspaceSet struct {
	index     map[AirspaceKey]int
	airspaces []*Airspace
}

// NewAirspaceSet returns an empty set.
func NewAirspaceSet() *AirspaceSet {
	return &AirspaceSet{index: make(map[AirspaceKey]int)}
}

// Add inserts the airspace unless a member shares its key.
// Returns false if the airspace was dropped as a duplicate.
func (s *AirspaceSet) Add(a *Airspace) bool {
	key := a.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.airspaces)
	s.airspaces = append(s.airspaces, a)
	return true
}

// Find returns the member with the given key, or nil.
func (s *AirspaceSet) Find(key AirspaceKey) *Airspace {
	if i, ok := s.index[key]; ok {
		return s.airspaces[i]
	}
	return nil
}

// Airspaces returns the members in insertion order.
func (s *AirspaceSet) Airspaces() []*Airspace {
	return s.airspaces
}
