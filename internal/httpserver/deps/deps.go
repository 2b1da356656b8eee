package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Aakash17x08/linkhive/internal/favicon"
	"github.com/Aakash17x08/linkhive/internal/hive"
	"github.com/Aakash17x08/linkhive/internal/lockout"
	"github.com/Aakash17x08/linkhive/internal/logger"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the server
	AllowedCIDRS []string         // IPs allowed to access healthz/readyz endpoints
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)

	RedisClient *redis.Client     // Redis client connection, pinged by readyz
	Hive        *hive.Hive        // In-memory document and its mutation engine
	Lockout     *lockout.Machine  // Privacy gate state machine
	Favicons    *favicon.Resolver // Best-effort favicon decoration

	SeedReloadTrigger chan struct{} // Channel to trigger a manual seed re-check (nil if seeding disabled)

	UnlockBurst  int // token bucket size for the unlock endpoint
	UnlockRefill int // unlock tokens refilled per IP per minute
}
