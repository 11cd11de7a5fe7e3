package jobs

import (
	"log"
	"time"

	"workzen/utils"

	"github.com/robfig/cron/v3"
)

// LeaveBalanceInitializer seeds a fresh set of leave balances for every
// active employee for the given year.
type LeaveBalanceInitializer interface {
	InitBalancesForAll(year int) (employees int, created int, err error)
}

var balanceInitializer LeaveBalanceInitializer

func SetLeaveBalanceInitializer(init LeaveBalanceInitializer) {
	balanceInitializer = init
}

// InitCronJobs registers the scheduled jobs and starts the scheduler. Job
// outcomes go to the daily log file.
func InitCronJobs(c *cron.Cron) error {
	// Midnight on January 1st: open the new leave year.
	_, err := c.AddFunc("0 0 1 1 *", func() {
		year := time.Now().Year()
		if balanceInitializer == nil {
			utils.LogError("Leave balance init skipped: no initializer registered")
			return
		}
		employees, created, err := balanceInitializer.InitBalancesForAll(year)
		if err != nil {
			utils.LogError("Leave balance init for %d failed: %v", year, err)
			return
		}
		utils.LogInfo("Leave balance init for %d: %d employees, %d balances created", year, employees, created)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
