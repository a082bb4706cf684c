package addresses

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrPoolExhausted = errors.New("address pool exhausted")
	ErrPoolDisabled  = errors.New("address pool disabled")
)

type registration struct {
	address uint32
	names   map[string]struct{}
}

// Pool hands out addresses from the range [lower, lower+size) and tracks
// which names own them. A registration is keyed by its primary hostname;
// aliases share the registration's lifetime and cannot be released on their
// own. Freed addresses rejoin the back of the free queue, so the most
// recently released slot is the last one handed out again.
type Pool struct {
	mutex sync.Mutex

	disabled bool
	size     int
	free     []uint32

	byHostname map[string]*registration
	byName     map[string]map[uint32]struct{}
}

func NewPool(lower uint32, size int) *Pool {
	free := make([]uint32, 0, size)
	for i := 0; i < size; i++ {
		free = append(free, lower+uint32(i))
	}

	return &Pool{
		size:       size,
		free:       free,
		byHostname: map[string]*registration{},
		byName:     map[string]map[uint32]struct{}{},
	}
}

// Allocate draws an address for hostname, or returns the address hostname
// already holds. Re-allocating merges the given aliases into the existing
// registration without consuming a slot; aliases are never removed this way.
func (p *Pool) Allocate(hostname string, aliases []string) (uint32, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.disabled {
		return 0, ErrPoolDisabled
	}

	if existing, found := p.byHostname[hostname]; found {
		for _, alias := range aliases {
			p.index(alias, existing)
		}
		return existing.address, nil
	}

	if len(p.free) == 0 {
		return 0, ErrPoolExhausted
	}

	address := p.free[0]
	p.free = p.free[1:]

	reg := &registration{address: address, names: map[string]struct{}{}}
	p.byHostname[hostname] = reg
	p.index(hostname, reg)
	for _, alias := range aliases {
		p.index(alias, reg)
	}

	return address, nil
}

// Deallocate releases the registration held by the primary hostname,
// removing the hostname and every alias from the name index in one step.
// Unknown hostnames report false.
func (p *Pool) Deallocate(hostname string) (uint32, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	reg, found := p.byHostname[hostname]
	if !found {
		return 0, false
	}

	delete(p.byHostname, hostname)
	for name := range reg.names {
		namedAddresses := p.byName[name]
		delete(namedAddresses, reg.address)
		if len(namedAddresses) == 0 {
			delete(p.byName, name)
		}
	}

	p.free = append(p.free, reg.address)

	return reg.address, true
}

// Lookup returns the addresses registered under name, primary or alias,
// in ascending order.
func (p *Pool) Lookup(name string) []uint32 {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	found := []uint32{}
	for address := range p.byName[name] {
		found = append(found, address)
	}
	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found
}

// Disable permanently rejects future allocations and reports whether the
// pool was completely free at that moment. A pool still holding live
// registrations is not safe to tear down.
func (p *Pool) Disable() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.disabled = true

	return len(p.free) == p.size
}

func (p *Pool) index(name string, reg *registration) {
	reg.names[name] = struct{}{}

	namedAddresses, found := p.byName[name]
	if !found {
		namedAddresses = map[uint32]struct{}{}
		p.byName[name] = namedAddresses
	}
	namedAddresses[reg.address] = struct{}{}
}
