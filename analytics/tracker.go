package analytics

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"dev-discuss/database"
	"dev-discuss/helpers"

	"github.com/go-redis/redis/v8"
	influxdb2 "github.com/influxdata/influxdb-client-go"
)

// number of recent visitors kept per profile in the cache
const recentVisitorLimit = 10

// Tracker gathers profile visits. Time-series points go to influx for
// counting, the last visitor emails per profile go to a capped redis list.
// Tracking is best-effort and never fails the request being tracked.
type Tracker struct {
	influxClient influxdb2.Client
	redisClient  *redis.Client
	VisitorAPI   database.InfluxAPI
}

// SetConnections initializes the instance
func (t *Tracker) SetConnections(influxClient *influxdb2.Client, redisClient *redis.Client) {
	t.influxClient = *influxClient
	t.redisClient = redisClient

	org := os.Getenv("ANALYTICS_ORG")
	bucket := os.Getenv("ANALYTICS_BUCKET")
	t.VisitorAPI.WriteAPI = t.influxClient.WriteAPIBlocking(org, bucket)
	t.VisitorAPI.QueryAPI = t.influxClient.QueryAPI(org)
}

func (t *Tracker) enabled() bool {
	return os.Getenv("USE_ANALYTICS") == "YES"
}

// SaveVisitor stores event data in the analytics stores
//
// the object type (domain) is included in the key name so this information
// can be wrapped in aggregation queries
func (t *Tracker) SaveVisitor(domain string, profileID string, email string) {

	if !t.enabled() {
		return
	}

	id := domain + "_" + profileID

	p := influxdb2.NewPoint(
		"visit",
		map[string]string{"profileId": id},
		map[string]interface{}{"email": email},
		time.Now())

	if err := t.VisitorAPI.WriteAPI.WritePoint(context.Background(), p); err != nil {
		log.Println(helpers.WrapError(err, helpers.FuncName()))
	}

	if email == "" {
		return
	}

	// capped list of the most recent visitor emails
	ctx := context.Background()
	pipe := t.redisClient.TxPipeline()
	pipe.LPush(ctx, "visitors:"+id, email)
	pipe.LTrim(ctx, "visitors:"+id, 0, recentVisitorLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Println(helpers.WrapError(err, helpers.FuncName()))
	}
}

// GetVisits counts the number of visits of a profile since startDT.
// The value is "live", read from the analytics store.
func (t *Tracker) GetVisits(domain string, profileID string, startDT time.Time) (int64, error) {

	if !t.enabled() {
		return -1, nil
	}

	flux := `from(bucket: "%s")
		|> range(start: %s)
		|> filter(fn: (r) => r["_measurement"] == "visit" and r["profileId"] == "%s")
		|> count()
		|> yield(name: "count")`

	id := domain + "_" + profileID
	flux = fmt.Sprintf(
		flux,
		os.Getenv("ANALYTICS_BUCKET"),
		startDT.Format(time.RFC3339),
		id)

	result, err := t.VisitorAPI.QueryAPI.Query(context.Background(), flux)
	if err != nil {
		return 0, helpers.WrapError(err, helpers.FuncName())
	}

	// single record expected
	var res interface{}
	for result.Next() {
		res = result.Record().Value()
	}

	var cnt int64
	if res != nil {
		cnt = res.(int64)
	}

	return cnt, nil
}

// RecentVisitors returns the last visitor emails of a profile
func (t *Tracker) RecentVisitors(domain string, profileID string) ([]string, error) {

	if !t.enabled() {
		return nil, nil
	}

	id := domain + "_" + profileID

	visitors, err := t.redisClient.LRange(context.Background(), "visitors:"+id, 0, recentVisitorLimit-1).Result()
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	return visitors, nil
}
