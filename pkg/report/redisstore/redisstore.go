/*
Package redisstore provides an implementation of report.Store
backed by a Redis database.
*/
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/pbanos/grove/pkg/report"
	"gopkg.in/redis.v5"
)

// DefaultPrefix is the key prefix used when none is given to New.
const DefaultPrefix = "grove:reports"

/*
ReportEncodeDecoder is an interface for objects
that allow encoding reports into slices of
bytes and decoding them back to reports.
*/
type ReportEncodeDecoder interface {
	Encode(*grove.Report) ([]byte, error)
	Decode([]byte) (*grove.Report, error)
}

// JSONEncodeDecoder is a ReportEncodeDecoder using JSON.
type JSONEncodeDecoder struct{}

// Encode returns the JSON representation of the report.
func (JSONEncodeDecoder) Encode(r *grove.Report) ([]byte, error) {
	return json.Marshal(r)
}

// Decode returns the report represented by the given JSON.
func (JSONEncodeDecoder) Decode(data []byte) (*grove.Report, error) {
	r := &grove.Report{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, err
	}
	return r, nil
}

type redisStore struct {
	rc      *redis.Client
	prefix  string
	rencdec ReportEncodeDecoder
}

/*
New builds a report.Store backed by a redis DB. Reports are stored
under <prefix>:<id> and their IDs are appended to the list under
<prefix>:index. A nil rencdec means JSONEncodeDecoder.
*/
func New(rc *redis.Client, prefix string, rencdec ReportEncodeDecoder) report.Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if rencdec == nil {
		rencdec = JSONEncodeDecoder{}
	}
	return &redisStore{rc, prefix, rencdec}
}

/*
Dial connects to the redis server on the given address and returns
a report.Store with the default prefix and JSON encoding.
*/
func Dial(addr string) (report.Store, error) {
	rc := redis.NewClient(&redis.Options{Addr: addr})
	if err := rc.Ping().Err(); err != nil {
		rc.Close()
		return nil, errors.Wrapf(err, "connecting to redis on %s", addr)
	}
	return New(rc, "", nil), nil
}

func (rs *redisStore) Create(ctx context.Context, r *grove.Report) error {
	var ok bool
	for !ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.Prepare(r)
		data, err := rs.rencdec.Encode(r)
		if err != nil {
			return errors.Wrap(err, "creating report: encoding report")
		}
		ok, err = rs.rc.SetNX(rs.keyFor(r.ID), data, 0).Result()
		if err != nil {
			return errors.Wrap(err, "creating report in redis")
		}
	}
	err := rs.rc.RPush(rs.indexKey(), r.ID).Err()
	if err != nil {
		return errors.Wrapf(err, "indexing report %q in redis", r.ID)
	}
	return nil
}

func (rs *redisStore) Get(ctx context.Context, id string) (*grove.Report, error) {
	data, err := rs.rc.Get(rs.keyFor(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving report %q", id)
	}
	r, err := rs.rencdec.Decode([]byte(data))
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving report %q: decoding %q", id, data)
	}
	return r, nil
}

func (rs *redisStore) List(ctx context.Context) ([]string, error) {
	ids, err := rs.rc.LRange(rs.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "listing reports in redis")
	}
	return ids, nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}

func (rs *redisStore) indexKey() string {
	return rs.keyFor("index")
}
