package addresses

import (
	"encoding/binary"
	"fmt"
	"net"
	"strings"
	"sync"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

// Allocation is one registered address as seen by the DNS responders. The
// addresses come straight from membership data as strings; the responder is
// responsible for parsing them. IPv6 is empty when the registration has none.
type Allocation struct {
	IP   string
	IPv6 string
}

// Registry is the membership-facing face of the Pool: it converts pool slots
// to concrete IPv4 addresses and remembers the optional IPv6 address each
// registration carries.
type Registry struct {
	mutex sync.Mutex

	pool          *Pool
	ipv6ByAddress map[uint32]string
}

func NewRegistry(pool *Pool) *Registry {
	return &Registry{
		pool:          pool,
		ipv6ByAddress: map[uint32]string{},
	}
}

// NewPoolFromCIDR builds a pool over the host range of cidr, starting two
// addresses past the network address to leave room for the gateway.
func NewPoolFromCIDR(cidr string, size int) (*Pool, error) {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "parsing pool subnet %q", cidr)
	}

	networkAddress, ok := ipToUint32(network.IP)
	if !ok {
		return nil, fmt.Errorf("pool subnet %q is not an IPv4 subnet", cidr)
	}

	ones, bits := network.Mask.Size()
	capacity := (1 << (bits - ones)) - 3 // network, gateway, broadcast
	if size <= 0 || size > capacity {
		return nil, fmt.Errorf("pool size %d does not fit in %q (capacity %d)", size, cidr, capacity)
	}

	return NewPool(networkAddress+2, size), nil
}

func (r *Registry) Register(hostname string, aliases []string, ipv6 net.IP) (net.IP, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	normalizedAliases := make([]string, len(aliases))
	for i, alias := range aliases {
		normalizedAliases[i] = normalizeName(alias)
	}

	address, err := r.pool.Allocate(normalizeName(hostname), normalizedAliases)
	if err != nil {
		return nil, err
	}

	if ipv6 != nil {
		r.ipv6ByAddress[address] = ipv6.String()
	}

	return uint32ToIP(address), nil
}

func (r *Registry) Deregister(hostname string) (net.IP, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	address, found := r.pool.Deallocate(normalizeName(hostname))
	if !found {
		return nil, false
	}

	delete(r.ipv6ByAddress, address)

	return uint32ToIP(address), true
}

func (r *Registry) LookupAllocations(name string) []Allocation {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	allocations := []Allocation{}
	for _, address := range r.pool.Lookup(normalizeName(name)) {
		allocations = append(allocations, Allocation{
			IP:   uint32ToIP(address).String(),
			IPv6: r.ipv6ByAddress[address],
		})
	}

	return allocations
}

func (r *Registry) Disable() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.pool.Disable()
}

// normalizeName matches the dot-terminated, case-insensitive form queries
// arrive in, so "App1" registered by the membership service answers a query
// for "app1.".
func normalizeName(name string) string {
	name = strings.ToLower(name)
	if !strings.HasSuffix(name, ".") {
		name += "."
	}
	return name
}

func ipToUint32(ip net.IP) (uint32, bool) {
	ip4 := ip.To4()
	if ip4 == nil {
		return 0, false
	}
	return binary.BigEndian.Uint32(ip4), true
}

func uint32ToIP(address uint32) net.IP {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, address)
	return ip
}
