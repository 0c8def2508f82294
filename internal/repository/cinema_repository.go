package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// CinemaRepo reads the cinema hierarchy: systems -> clusters -> theaters.
// The hierarchy is reference data maintained outside this service, so the
// repo is read-only.
type CinemaRepo struct {
	db *sql.DB
}

// NewCinemaRepo constructs a CinemaRepo with the provided DB handle.
func NewCinemaRepo(db *sql.DB) *CinemaRepo {
	return &CinemaRepo{db: db}
}

// SystemTree is a cinema system with its clusters (and their theaters)
// attached.
type SystemTree struct {
	model.CinemaSystem
	Clusters []model.CinemaCluster
}

// ListSystems returns every cinema system with its clusters and theaters,
// ordered by id at each level. Systems without clusters and clusters
// without theaters are included with empty slices.
func (r *CinemaRepo) ListSystems(ctx context.Context) ([]SystemTree, error) {
	const op = "repository.CinemaRepo.ListSystems"

	const q = `SELECT s.id, s.name, s.logo, c.id, c.name, c.address, t.id, t.name
	           FROM cinema_systems s
	           LEFT JOIN cinema_clusters c ON c.system_id = s.id
	           LEFT JOIN theaters t ON t.cluster_id = c.id
	           ORDER BY s.id, c.id, t.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []SystemTree{}
	for rows.Next() {
		var (
			sys                      model.CinemaSystem
			clusterID, clusterName   sql.NullString
			clusterAddr, theaterName sql.NullString
			theaterID                sql.NullInt64
		)
		if err := rows.Scan(&sys.ID, &sys.Name, &sys.Logo, &clusterID, &clusterName, &clusterAddr, &theaterID, &theaterName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		// rows arrive grouped by system then cluster
		if len(out) == 0 || out[len(out)-1].ID != sys.ID {
			out = append(out, SystemTree{CinemaSystem: sys, Clusters: []model.CinemaCluster{}})
		}
		st := &out[len(out)-1]
		if !clusterID.Valid {
			continue
		}
		if len(st.Clusters) == 0 || st.Clusters[len(st.Clusters)-1].ID != clusterID.String {
			st.Clusters = append(st.Clusters, model.CinemaCluster{
				ID:       clusterID.String,
				SystemID: sys.ID,
				Name:     clusterName.String,
				Address:  clusterAddr.String,
				Theaters: []model.Theater{},
			})
		}
		if theaterID.Valid {
			cl := &st.Clusters[len(st.Clusters)-1]
			cl.Theaters = append(cl.Theaters, model.Theater{
				ID:        uint64(theaterID.Int64),
				ClusterID: clusterID.String,
				Name:      theaterName.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// SystemExists reports whether a cinema system with the given id exists.
func (r *CinemaRepo) SystemExists(ctx context.Context, systemID string) (bool, error) {
	const op = "repository.CinemaRepo.SystemExists"

	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM cinema_systems WHERE id = ? LIMIT 1", systemID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// ListClusters returns the clusters of one system with their theaters.
// An unknown system yields ErrSystemNotFound.
func (r *CinemaRepo) ListClusters(ctx context.Context, systemID string) ([]model.CinemaCluster, error) {
	const op = "repository.CinemaRepo.ListClusters"

	ok, err := r.SystemExists(ctx, systemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSystemNotFound
	}

	const q = `SELECT c.id, c.name, c.address, t.id, t.name
	           FROM cinema_clusters c
	           LEFT JOIN theaters t ON t.cluster_id = c.id
	           WHERE c.system_id = ?
	           ORDER BY c.id, t.id`
	rows, err := r.db.QueryContext(ctx, q, systemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []model.CinemaCluster{}
	for rows.Next() {
		var (
			cl          model.CinemaCluster
			theaterID   sql.NullInt64
			theaterName sql.NullString
		)
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Address, &theaterID, &theaterName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if len(out) == 0 || out[len(out)-1].ID != cl.ID {
			cl.SystemID = systemID
			cl.Theaters = []model.Theater{}
			out = append(out, cl)
		}
		if theaterID.Valid {
			last := &out[len(out)-1]
			last.Theaters = append(last.Theaters, model.Theater{
				ID:        uint64(theaterID.Int64),
				ClusterID: cl.ID,
				Name:      theaterName.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// GetTheater fetches a theater by id. It returns ErrTheaterNotFound if no
// row is found.
func (r *CinemaRepo) GetTheater(ctx context.Context, id uint64) (model.Theater, error) {
	const op = "repository.CinemaRepo.GetTheater"

	var t model.Theater
	err := r.db.QueryRowContext(ctx, "SELECT id, cluster_id, name FROM theaters WHERE id = ?", id).
		Scan(&t.ID, &t.ClusterID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Theater{}, ErrTheaterNotFound
	}
	if err != nil {
		return model.Theater{}, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}
