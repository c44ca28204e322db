package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/mzkit/uuid7"
)

// Cross-process uniqueness audit. Each run generates a batch of identifiers
// and registers every one as an ephemeral znode named by the identifier
// under a shared root. UUIDv7 uniqueness needs no coordination, so a
// node-already-exists response from ZooKeeper means two processes produced
// the same identifier - which this program exists to catch, not to prevent.
//
// Start several instances against the same ensemble to audit concurrently:
//
//	go run ./others/zkaudit -servers localhost:2181 -count 100000

const auditRoot = "/uuid7_audit"

func main() {
	servers := flag.String("servers", "localhost:2181", "comma-separated ZooKeeper servers")
	count := flag.Int("count", 10000, "identifiers to register")
	hold := flag.Duration("hold", 10*time.Second, "how long to keep ephemeral nodes alive after registering")
	flag.Parse()

	conn, _, err := zk.Connect(strings.Split(*servers, ","), 5*time.Second)
	if err != nil {
		log.Fatalf("connect zookeeper: %v", err)
	}
	defer conn.Close()

	ensureRoot(conn)

	hostname, _ := os.Hostname()
	log.Printf("auditing %d identifiers from %s (pid %d)", *count, hostname, os.Getpid())

	ids, err := uuid7.NewBatch(*count)
	if err != nil {
		log.Fatalf("generate batch: %v", err)
	}

	start := time.Now()
	collisions := 0
	for _, id := range ids {
		path := auditRoot + "/" + id.String()
		_, err := conn.Create(path, []byte(hostname), zk.FlagEphemeral, zk.WorldACL(zk.PermAll))
		switch {
		case err == nil:
		case errors.Is(err, zk.ErrNodeExists):
			collisions++
			owner, _, gerr := conn.Get(path)
			if gerr != nil {
				log.Printf("COLLISION: %s (owner unknown: %v)", id, gerr)
			} else {
				log.Printf("COLLISION: %s already registered by %s", id, owner)
			}
		default:
			log.Fatalf("register %s: %v", id, err)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("registered %d identifiers in %s (%.0f/second)\n",
		len(ids)-collisions, elapsed, float64(len(ids))/elapsed.Seconds())
	fmt.Printf("collisions: %d\n", collisions)

	if collisions > 0 {
		os.Exit(1)
	}

	// Keep the session open so concurrently running instances can still
	// collide against our ephemeral nodes.
	log.Printf("holding ephemeral nodes for %s", *hold)
	time.Sleep(*hold)
}

// ensureRoot creates the audit root if it does not exist yet. Losing the
// race to another instance is fine.
func ensureRoot(conn *zk.Conn) {
	exists, _, err := conn.Exists(auditRoot)
	if err != nil {
		log.Fatalf("check %s: %v", auditRoot, err)
	}
	if exists {
		return
	}
	_, err = conn.Create(auditRoot, []byte{}, 0, zk.WorldACL(zk.PermAll))
	if err != nil && !errors.Is(err, zk.ErrNodeExists) {
		log.Fatalf("create %s: %v", auditRoot, err)
	}
}
