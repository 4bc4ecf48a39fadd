package deps

import (
	"time"

	"github.com/clipkeeper/clipkeeperd/internal/controller"
	"github.com/clipkeeper/clipkeeperd/internal/logger"
	"github.com/clipkeeper/clipkeeperd/internal/scheduler"
	redisstore "github.com/clipkeeper/clipkeeperd/internal/store/redis"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Controller *controller.Controller // mutation protocol entry point
	Store      *redisstore.Store      // used by infra/readiness probes only

	SeedReloader      *scheduler.SeedReloader // nil when seeding is disabled
	SeedReloadTrigger chan struct{}           // manual seed import trigger (nil when disabled)

	AdminCIDRS       []string // IPs allowed on /infra and /reload
	TrustProxy       bool     // resolve client IP from forwarded headers
	RateBurst        int      // mutation rate-limit bucket size
	RateRefillPerMin int      // mutation rate-limit refill rate
}
