package bedpe

import (
	"os"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// IndexFileName is the name of the cluster index written into the output
// directory next to the cluster files.
const IndexFileName = "clusters.sqlite"

type ClusterIndex struct {
	DB       *sqlx.DB
	Metadata *IndexMetadata
}

func (c *ClusterIndex) Close() error {
	return c.DB.Close()
}

// IndexMetadata conforms to the single row of the SQLite table "metadata"
// from cluster index files, and can be easily parsed with sqlx.
type IndexMetadata struct {
	SourcePath   string `db:"source_path"`
	Resolution   int    `db:"resolution"`
	CreationTime Time   `db:"creation_time"`
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}

// OpenClusterIndex opens an existing cluster index for reading. The
// "clusters" table rows scan directly into ChromSummary.
func OpenClusterIndex(path string) (*ClusterIndex, error) {
	idx := &ClusterIndex{
		Metadata: &IndexMetadata{},
	}

	db, err := openIndexDB(path)
	if err != nil {
		return nil, err
	}
	idx.DB = db

	// Not all index files have metadata; ignore any error
	_ = idx.DB.Get(idx.Metadata, "SELECT * FROM metadata LIMIT 1")

	return idx, nil
}

const indexSchema = `
CREATE TABLE metadata (
	source_path TEXT NOT NULL,
	resolution INTEGER NOT NULL,
	creation_time INTEGER NOT NULL
);
CREATE TABLE clusters (
	chromosome TEXT NOT NULL,
	n_clusters INTEGER NOT NULL,
	n_pixels INTEGER NOT NULL,
	min_bin INTEGER NOT NULL,
	max_bin INTEGER NOT NULL,
	score REAL NOT NULL,
	file_name TEXT NOT NULL
);
`

// WriteClusterIndex replaces any index at path with one describing the
// cluster files just written.
func WriteClusterIndex(path string, meta IndexMetadata, chroms []ChromSummary) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return pfx.Err(err)
	}

	db, err := openIndexDB(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer db.Close()

	if _, err := db.Exec(indexSchema); err != nil {
		return pfx.Err(err)
	}

	if _, err := db.Exec(
		"INSERT INTO metadata (source_path, resolution, creation_time) VALUES (?, ?, ?)",
		meta.SourcePath, meta.Resolution, time.Time(meta.CreationTime).Unix(),
	); err != nil {
		return pfx.Err(err)
	}

	for _, cs := range chroms {
		if _, err := db.NamedExec(
			`INSERT INTO clusters
				(chromosome, n_clusters, n_pixels, min_bin, max_bin, score, file_name)
			VALUES
				(:chromosome, :n_clusters, :n_pixels, :min_bin, :max_bin, :score, :file_name)`,
			cs,
		); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}
