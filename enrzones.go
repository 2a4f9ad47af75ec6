// Package enrzones extracts danger, prohibited, and restricted airspace
// zones from eAIP ENR 5.1 tables and assembles them into validated
// airspace records ready for serialization.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, yaml/) or after
// the document they understand (enr/, eaip/).
package enrzones
