// Package fgl implements the FGL layout file format (§6): an XML document
// persisting a layout.Layout's grid shape, clocking scheme, and gate/wire
// placement. No third-party XML library exists anywhere in the retrieved
// example corpus, so this package uses the standard library's
// encoding/xml directly (see DESIGN.md).
package fgl

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/fcnkit/fcn/clocking"
	"github.com/fcnkit/fcn/coord"
	"github.com/fcnkit/fcn/fcnerr"
	"github.com/fcnkit/fcn/layout"
)

// document is the root <fgl> element's XML shape.
type document struct {
	XMLName xml.Name     `xml:"fgl"`
	Layout  layoutXML    `xml:"layout"`
	Gates   []gateXML    `xml:"gates>gate"`
}

type layoutXML struct {
	Name     string    `xml:"name"`
	Topology string    `xml:"topology"`
	Size     sizeXML   `xml:"size"`
	Clocking clockXML  `xml:"clocking"`
}

type sizeXML struct {
	X int `xml:"x"`
	Y int `xml:"y"`
	Z int `xml:"z"`
}

type clockXML struct {
	Name  string     `xml:"name"`
	Zones []zoneXML  `xml:"zones>zone"`
}

type zoneXML struct {
	X     int `xml:"x"`
	Y     int `xml:"y"`
	Clock int `xml:"clock"`
}

type gateXML struct {
	ID       string      `xml:"id"`
	Type     string      `xml:"type"`
	Name     string      `xml:"name,omitempty"`
	Loc      locXML      `xml:"loc"`
	Incoming []signalXML `xml:"incoming>signal"`
}

type locXML struct {
	X int `xml:"x"`
	Y int `xml:"y"`
	Z int `xml:"z"`
}

type signalXML struct {
	X int `xml:"x"`
	Y int `xml:"y"`
	Z int `xml:"z"`
}

// gateArity is the required fan-in count per §6's gate type table.
var gateArity = map[string]int{
	"PI": 0, "PO": 1, "NOT": 1, "BUF": 1, "WIRE": 1,
	"AND": 2, "OR": 2, "MAJ": 3,
}

// Write serializes l (plus its clocking scheme) to FGL XML.
func Write(l *layout.Layout, name string) ([]byte, error) {
	dims := l.Dims()
	doc := document{
		Layout: layoutXML{
			Name:     name,
			Topology: l.Grid.Grid.Kind.String(),
			Size:     sizeXML{X: dims.X, Y: dims.Y, Z: dims.Z},
			Clocking: clockXML{Name: l.Grid.Scheme.Name()},
		},
	}
	if l.Grid.Scheme.IsOpen() {
		if open, ok := l.Grid.Scheme.(*clocking.OpenScheme); ok {
			doc.Layout.Clocking.Zones = zonesFrom(open)
		}
	}

	tiles := l.AllTiles()
	for c, t := range tiles {
		if t.Kind != layout.Vertex {
			continue
		}
		gateType := t.GateType
		if gateType == "" {
			gateType = "PI"
		}
		gate := gateXML{
			ID:       t.NodeID,
			Type:     gateType,
			Name:     t.NodeID,
			Loc:      locXML{X: c.X, Y: c.Y, Z: c.Z},
			Incoming: incomingSignals(l, tiles, c),
		}
		doc.Gates = append(doc.Gates, gate)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// incomingSignals recovers a vertex tile's fan-in coordinates by walking
// its clocking predecessors and keeping the ones that are actually
// occupied (by another gate or by a committed wire), mirroring how a
// gate-level layout's incoming edges are read back from tile adjacency
// rather than from a separate signal list.
func incomingSignals(l *layout.Layout, tiles map[coord.Coordinate]layout.Tile, c coord.Coordinate) []signalXML {
	var signals []signalXML
	for _, pred := range l.Grid.IncomingClocked(c) {
		if t, ok := tiles[pred]; ok && t.Kind != layout.Empty {
			signals = append(signals, signalXML{X: pred.X, Y: pred.Y, Z: pred.Z})
		}
	}
	return signals
}

func zonesFrom(o *clocking.OpenScheme) []zoneXML {
	var zones []zoneXML
	for c, phase := range o.Zones() {
		zones = append(zones, zoneXML{X: c.X, Y: c.Y, Clock: phase})
	}
	return zones
}

// Read parses FGL XML into a fresh layout.Layout plus the document's name.
// It fails with fcnerr.MalformedInput when the XML does not parse, the
// topology is missing or unknown, the clocking name is unknown and no
// zones are given, or a gate's incoming-signal count does not match its
// type. Other elements are not checked for presence: a missing size or
// location reads as zero.
func Read(data []byte) (*layout.Layout, string, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, "", errors.Join(fcnerr.MalformedInput, err)
	}

	kind, ok := coord.ParseGridKind(doc.Layout.Topology)
	if !ok {
		return nil, "", errors.Join(fcnerr.MalformedInput,
			fmt.Errorf("fgl: unknown topology %q", doc.Layout.Topology))
	}
	scheme, schemeErr := clocking.ByName(doc.Layout.Clocking.Name)
	if schemeErr != nil {
		if len(doc.Layout.Clocking.Zones) == 0 {
			return nil, "", errors.Join(fcnerr.MalformedInput,
				fmt.Errorf("fgl: unknown clocking scheme %q", doc.Layout.Clocking.Name))
		}
		zones := make(map[coord.Coordinate]int, len(doc.Layout.Clocking.Zones))
		for _, z := range doc.Layout.Clocking.Zones {
			zones[coord.New(z.X, z.Y)] = z.Clock
		}
		scheme = clocking.NewOpenScheme(doc.Layout.Clocking.Name, maxClockIndex(doc.Layout.Clocking.Zones)+1, false, zones)
	}

	dims := coord.Dimension{X: doc.Layout.Size.X, Y: doc.Layout.Size.Y, Z: doc.Layout.Size.Z}
	grid := coord.NewGrid(dims, kind)
	l := layout.New(clocking.New(grid, scheme))

	for _, gate := range doc.Gates {
		arity, known := gateArity[gate.Type]
		if !known {
			arity = len(gate.Incoming)
		}
		if len(gate.Incoming) != arity {
			return nil, "", errors.Join(fcnerr.MalformedInput,
				fmt.Errorf("fgl: gate %q of type %q has %d incoming signals, want %d", gate.ID, gate.Type, len(gate.Incoming), arity))
		}
		loc := coord.Coordinate{X: gate.Loc.X, Y: gate.Loc.Y, Z: gate.Loc.Z}
		id := gate.ID
		if gate.Name != "" {
			id = gate.Name
		}
		l.PlaceVertex(loc, id, gate.Type)
	}

	return l, doc.Layout.Name, nil
}

func maxClockIndex(zones []zoneXML) int {
	max := 0
	for _, z := range zones {
		if z.Clock > max {
			max = z.Clock
		}
	}
	return max
}
