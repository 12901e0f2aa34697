/*
Package mongo provides a collection of observations that uses a
MongoDB database as backend.
*/
package mongo

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/pbanos/grove/pkg/grove"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// DefaultCollection is the collection used when none is given to Open.
const DefaultCollection = "observations"

type document struct {
	ID       bson.ObjectId `bson:"_id,omitempty"`
	Class    string        `bson:"class"`
	Features []float64     `bson:"features"`
}

/*
Collection is a set of observations stored as documents of a MongoDB
collection, one per observation with its class and its features.
*/
type Collection struct {
	session *mgo.Session
	name    string
}

/*
Open takes a MongoDB database session and a collection name and returns a
Collection that works on that collection of the default database for the
session. An empty name means DefaultCollection.
*/
func Open(session *mgo.Session, collection string) *Collection {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Collection{session: session, name: collection}
}

/*
Dial takes a MongoDB connection URL, connects to it and returns a
Collection on the default database of the URL.
*/
func Dial(url, collection string) (*Collection, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to mongodb")
	}
	return Open(session, collection), nil
}

// Write stores the given observations and returns how many were stored.
func (c *Collection) Write(ctx context.Context, observations []grove.Observation) (int, error) {
	if len(observations) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, len(observations))
	for _, o := range observations {
		docs = append(docs, document{ID: bson.NewObjectId(), Class: o.Class, Features: o.Features})
	}
	err := c.collection().Insert(docs...)
	if err != nil {
		return 0, errors.Wrapf(err, "inserting %d observations", len(observations))
	}
	return len(observations), nil
}

/*
Iterate takes a context and a lambda function that is called with every
observation in the collection in insertion order. The lambda can return
false to stop iterating, or an error to abort it. All observations must
have as many features as the first one.
*/
func (c *Collection) Iterate(ctx context.Context, lambda func(grove.Observation) (bool, error)) error {
	iter := c.collection().Find(nil).Sort("_id").Iter()
	defer iter.Close()
	var doc document
	featureCount := -1
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if featureCount < 0 {
			featureCount = len(doc.Features)
		}
		if len(doc.Features) != featureCount {
			return errors.Newf("document %s has %d features, expected %d", doc.ID.Hex(), len(doc.Features), featureCount)
		}
		ok, err := lambda(grove.NewObservation(doc.Class, doc.Features...))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return errors.Wrap(iter.Err(), "iterating observations")
}

// Read returns all the observations in the collection in insertion order.
func (c *Collection) Read(ctx context.Context) (*grove.Observations, error) {
	obs := grove.NewObservations(nil)
	err := c.Iterate(ctx, func(o grove.Observation) (bool, error) {
		obs.Add(o)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return obs, nil
}

// Count returns the number of observations in the collection.
func (c *Collection) Count(context.Context) (int, error) {
	return c.collection().Count()
}

// Close closes the underlying session.
func (c *Collection) Close() error {
	c.session.Close()
	return nil
}

func (c *Collection) collection() *mgo.Collection {
	return c.session.DB("").C(c.name)
}
