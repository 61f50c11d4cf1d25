package node

import (
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Node identifies the running replica. Its ID is stamped on outgoing change
// events so consumers can tell which replica produced them.
type Node struct {
	ID         string
	Hostname   string
	IPAddress  string
	Version    string
	CommitHash string
}

var Version = "development"
var CommitHash = "unknown"

var (
	current     *Node
	currentOnce sync.Once
)

func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}

		current = &Node{
			ID:         uuid.NewString(),
			Hostname:   hostname,
			IPAddress:  lookupIPAddress(),
			Version:    Version,
			CommitHash: CommitHash,
		}
	})

	return current
}

func (n *Node) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("version", n.Version),
		slog.String("node", n.ID),
	}
}

func lookupIPAddress() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip := ipNet.IP.To4(); ip != nil {
			return ip.String()
		}
	}

	return "127.0.0.1"
}
