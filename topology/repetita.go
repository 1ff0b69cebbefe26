package topology

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadRepetita reads a topology from a REPETITA network file and an optional
// demand file (empty demandsPath for none).
func LoadRepetita(networkPath string, demandsPath string) (*Topology, error) {
	network, err := os.Open(networkPath)
	if err != nil {
		return nil, err
	}
	defer network.Close()

	var demands io.Reader
	if demandsPath != "" {
		f, err := os.Open(demandsPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		demands = f
	}

	return ParseRepetita(network, demands)
}

// ParseRepetita builds a topology from the REPETITA text format. Every edge
// of the network becomes a directed link. Demands between the same pair of
// nodes are summed. The border routers are the endpoints of the demands in
// order of appearance, or all the nodes if demands is nil.
func ParseRepetita(network io.Reader, demands io.Reader) (*Topology, error) {
	topo, err := parseRepetitaNetwork(network)
	if err != nil {
		return nil, err
	}

	if demands == nil {
		topo.BorderRouters = append([]string{}, topo.Nodes...)
	} else if err := parseRepetitaDemands(demands, topo); err != nil {
		return nil, err
	}

	if err := topo.Validate(); err != nil {
		return nil, err
	}
	return topo, nil
}

func parseRepetitaNetwork(r io.Reader) (*Topology, error) {
	scanner := bufio.NewScanner(r)

	scanner.Scan()
	nNodes, err := sectionSize(scanner.Text(), "NODES")
	if err != nil {
		return nil, err
	}

	scanner.Scan() // skip headers
	topo := &Topology{Nodes: make([]string, 0, nNodes)}
	for i := 0; i < nNodes; i++ {
		if !scanner.Scan() {
			return nil, invalidf("expected %d nodes, got %d", nNodes, i)
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			return nil, invalidf("empty node line %d", i)
		}
		topo.Nodes = append(topo.Nodes, parts[0])
	}

	scanner.Scan() // skip line between node and edge sections
	scanner.Scan()
	if _, err := sectionSize(scanner.Text(), "EDGES"); err != nil {
		return nil, err
	}
	scanner.Scan() // skip edge headers

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 6 {
			return nil, invalidf("invalid edge %q: expected 6 fields", line)
		}
		from, err := nodeAt(topo.Nodes, parts[1])
		if err != nil {
			return nil, err
		}
		to, err := nodeAt(topo.Nodes, parts[2])
		if err != nil {
			return nil, err
		}
		topo.Links = append(topo.Links, Link{From: from, To: to})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return topo, nil
}

func parseRepetitaDemands(r io.Reader, topo *Topology) error {
	scanner := bufio.NewScanner(r)

	scanner.Scan()
	if _, err := sectionSize(scanner.Text(), "DEMANDS"); err != nil {
		return err
	}
	scanner.Scan() // skip headers

	index := map[[2]string]int{}
	borders := map[string]bool{}
	addBorder := func(n string) {
		if !borders[n] {
			borders[n] = true
			topo.BorderRouters = append(topo.BorderRouters, n)
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 4 {
			return invalidf("invalid demand %q: expected 4 fields", line)
		}
		src, err := nodeAt(topo.Nodes, parts[1])
		if err != nil {
			return err
		}
		dst, err := nodeAt(topo.Nodes, parts[2])
		if err != nil {
			return err
		}
		bw, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil {
			return invalidf("invalid demand %q: %s", line, err)
		}

		addBorder(src)
		addBorder(dst)
		key := [2]string{src, dst}
		if i, ok := index[key]; ok {
			topo.Demands[i].Weight += bw
			continue
		}
		index[key] = len(topo.Demands)
		topo.Demands = append(topo.Demands, Demand{Src: src, Dst: dst, Weight: bw})
	}
	return scanner.Err()
}

// sectionSize parses section headers such as "NODES 12".
func sectionSize(line string, section string) (int, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 || parts[0] != section {
		return 0, invalidf("expected %s section, got %q", section, line)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 0 {
		return 0, invalidf("invalid %s count %q", section, parts[1])
	}
	return n, nil
}

func nodeAt(nodes []string, field string) (string, error) {
	i, err := strconv.Atoi(field)
	if err != nil || i < 0 || i >= len(nodes) {
		return "", invalidf("invalid node index %q", field)
	}
	return nodes[i], nil
}
