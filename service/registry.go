package service

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
)

var tables = hashmap.New()

func CreateTable(cfg TableConfig) (*Table, error) {
	table, err := NewTable(cfg)
	if err != nil {
		return nil, err
	}
	tables.Set(table.ID, table)
	log.Infof("table %s created for game %s\n", table.ID, table.Name())
	return table, nil
}

func GetTable(id string) (*Table, error) {
	if v, ok := tables.Get(id); ok {
		return v.(*Table), nil
	}
	return nil, consts.ErrorsTableNotFound
}

// GetTables lists the tables, oldest first.
func GetTables() []*Table {
	list := make([]*Table, 0)
	tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Table))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].Created.Before(list[j].Created)
	})
	return list
}

func DeleteTable(id string) error {
	table, err := GetTable(id)
	if err != nil {
		return err
	}
	tables.Del(id)
	table.Close()
	return nil
}

// Sweep deletes finished tables and tables left idle for longer than idle.
func Sweep(now time.Time, idle time.Duration) int {
	removed := 0
	for _, table := range GetTables() {
		updated, running := table.idleSince()
		if running {
			continue
		}
		if table.Finished() || now.Sub(updated) > idle {
			if DeleteTable(table.ID) == nil {
				removed++
			}
		}
	}
	return removed
}

// StartJanitor sweeps the registry every interval until stop is closed.
func StartJanitor(interval time.Duration, stop <-chan struct{}) {
	async.Async(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				if n := Sweep(now, consts.TableIdleTimeout); n > 0 {
					log.Infof("janitor removed %d table(s)\n", n)
				}
			}
		}
	})
}
