package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
)

// Directory counts store mutations and search cache outcomes, and reports
// collection sizes and versions at scrape time.
type Directory struct {
	mutations *prometheus.CounterVec
	searches  *prometheus.CounterVec
}

// NewDirectory registers the directory metrics on reg (default registerer if nil)
// and a collector reading the current snapshots of store.
func NewDirectory(reg prometheus.Registerer, store *directory.Store) (*Directory, error) {
	d := &Directory{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directory_mutations_total",
			Help:      "Successful store mutations by collection and operation.",
		}, []string{"collection", "op"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_total",
			Help:      "User search cache lookups by result.",
		}, []string{"result"}), // hit|miss
	}
	var err error
	if d.mutations, err = register(reg, d.mutations); err != nil {
		return nil, err
	}
	if d.searches, err = register(reg, d.searches); err != nil {
		return nil, err
	}
	if _, err = register(reg, newSnapshotCollector(store)); err != nil {
		return nil, err
	}
	return d, nil
}

// Observe is a directory.Observer.
func (d *Directory) Observe(ev directory.Event) {
	d.mutations.WithLabelValues(string(ev.Collection), string(ev.Op)).Inc()
}

func (d *Directory) SearchHit()  { d.searches.WithLabelValues("hit").Inc() }
func (d *Directory) SearchMiss() { d.searches.WithLabelValues("miss").Inc() }

// snapshotCollector reads entry counts and versions straight from the store.
type snapshotCollector struct {
	store       *directory.Store
	entriesDesc *prometheus.Desc
	versionDesc *prometheus.Desc
}

func newSnapshotCollector(store *directory.Store) *snapshotCollector {
	return &snapshotCollector{
		store: store,
		entriesDesc: prometheus.NewDesc(namespace+"_directory_entries",
			"Entries in the current snapshot.", []string{"collection"}, nil),
		versionDesc: prometheus.NewDesc(namespace+"_directory_version",
			"Version of the current snapshot.", []string{"collection"}, nil),
	}
}

func (c *snapshotCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entriesDesc
	ch <- c.versionDesc
}

func (c *snapshotCollector) Collect(ch chan<- prometheus.Metric) {
	users, roles := c.store.Users(), c.store.Roles()
	u, r := string(directory.CollectionUsers), string(directory.CollectionRoles)

	ch <- prometheus.MustNewConstMetric(c.entriesDesc, prometheus.GaugeValue, float64(users.Len()), u)
	ch <- prometheus.MustNewConstMetric(c.versionDesc, prometheus.GaugeValue, float64(users.Version()), u)
	ch <- prometheus.MustNewConstMetric(c.entriesDesc, prometheus.GaugeValue, float64(roles.Len()), r)
	ch <- prometheus.MustNewConstMetric(c.versionDesc, prometheus.GaugeValue, float64(roles.Version()), r)
}
