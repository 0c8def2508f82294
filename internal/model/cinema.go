package model

// CinemaSystem is a cinema chain (brand), e.g. "BHDStar". Its id is a
// short string code chosen by the operator.
type CinemaSystem struct {
	ID   string // cinema_systems.id
	Name string // cinema_systems.name
	Logo string // cinema_systems.logo
}

// CinemaCluster is a physical cinema site that belongs to one system.
type CinemaCluster struct {
	ID       string // cinema_clusters.id
	SystemID string // cinema_clusters.system_id
	Name     string // cinema_clusters.name
	Address  string // cinema_clusters.address

	Theaters []Theater // populated by catalog queries only
}

// Theater is a single screening room inside a cluster. Seats and showings
// hang off a theater.
type Theater struct {
	ID        uint64 // theaters.id
	ClusterID string // theaters.cluster_id
	Name      string // theaters.name
}
