// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/podium/internal/models"
	"github.com/tomtom215/podium/internal/stats"
	"github.com/tomtom215/podium/internal/validation"
)

// query computes a result from validated args.
type query func(eng *stats.Engine, args []string) (interface{}, error)

// run wraps q into a cobra RunE: validate, load, compute, print.
func (a *app) run(validate func(args []string) error, q query) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if validate != nil {
			if err := validate(args); err != nil {
				return err
			}
		}
		eng, err := a.engine(cmd.Context())
		if err != nil {
			return err
		}
		result, err := q(eng, args)
		if err != nil {
			return err
		}
		return a.print(cmd.OutOrStdout(), result)
	}
}

func validDriver(args []string) error {
	if _, verr := validation.NewDriverParams(args[0]); verr != nil {
		return verr
	}
	return nil
}

func validDriverYear(args []string) error {
	if _, verr := validation.NewDriverYearParams(args[0], args[1]); verr != nil {
		return verr
	}
	return nil
}

// driverYear re-parses args that validDriverYear already accepted.
func driverYear(args []string) validation.DriverYearParams {
	p, _ := validation.NewDriverYearParams(args[0], args[1])
	return p
}

func (a *app) queryCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "drivers",
			Short: "List every driver sorted by full name",
			Args:  cobra.NoArgs,
			RunE: a.run(nil, func(eng *stats.Engine, _ []string) (interface{}, error) {
				return eng.ListDrivers()
			}),
		},
		{
			Use:   "seasons <driver>",
			Short: "Seasons a driver raced in, newest first",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(validDriver, func(eng *stats.Engine, args []string) (interface{}, error) {
				years, err := eng.DriverSeasons(args[0])
				if err != nil {
					return nil, err
				}
				return &models.DriverSeasonsResponse{Driver: args[0], AvailableYears: years}, nil
			}),
		},
		{
			Use:   "points <driver> <year>",
			Short: "Points per Grand Prix in one season",
			Args:  cobra.ExactArgs(2),
			RunE: a.run(validDriverYear, func(eng *stats.Engine, args []string) (interface{}, error) {
				p := driverYear(args)
				points, err := eng.DriverPointsByRound(p.Driver, p.Year)
				if err != nil {
					return nil, err
				}
				return &models.PointsByRoundResponse{Driver: p.Driver, SeasonYear: p.Year, PointsByRound: points}, nil
			}),
		},
		{
			Use:   "podiums <driver> <year>",
			Short: "Podium finishes per Grand Prix in one season",
			Args:  cobra.ExactArgs(2),
			RunE: a.run(validDriverYear, func(eng *stats.Engine, args []string) (interface{}, error) {
				p := driverYear(args)
				podiums, err := eng.DriverPodiumsByRound(p.Driver, p.Year)
				if err != nil {
					return nil, err
				}
				return &models.PodiumsByRoundResponse{Driver: p.Driver, SeasonYear: p.Year, PodiumsByRound: podiums}, nil
			}),
		},
		{
			Use:   "starting-positions <driver> <year>",
			Short: "Grid slot per Grand Prix in one season",
			Args:  cobra.ExactArgs(2),
			RunE: a.run(validDriverYear, func(eng *stats.Engine, args []string) (interface{}, error) {
				p := driverYear(args)
				grid, err := eng.DriverStartingPositions(p.Driver, p.Year)
				if err != nil {
					return nil, err
				}
				return &models.StartingPositionsResponse{Driver: p.Driver, SeasonYear: p.Year, StartingPositions: grid}, nil
			}),
		},
		{
			Use:   "standings <driver> <year>",
			Short: "Full standings table of a season; the driver is echoed only",
			Args:  cobra.ExactArgs(2),
			RunE: a.run(validDriverYear, func(eng *stats.Engine, args []string) (interface{}, error) {
				p := driverYear(args)
				return eng.SeasonStandings(p.Year, p.Driver)
			}),
		},
		{
			Use:   "podiums-by-season <driver>",
			Short: "Podium count of every season",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(validDriver, func(eng *stats.Engine, args []string) (interface{}, error) {
				seasons, err := eng.DriverPodiumsBySeason(args[0])
				if err != nil {
					return nil, err
				}
				return &models.PodiumsBySeasonResponse{Driver: args[0], PodiumsBySeason: seasons}, nil
			}),
		},
		{
			Use:   "compare <driver1> <driver2> <year>",
			Short: "Round-by-round standings of two drivers",
			Args:  cobra.ExactArgs(3),
			RunE: a.run(
				func(args []string) error {
					if _, verr := validation.NewCompareParams(args[0], args[1], args[2]); verr != nil {
						return verr
					}
					return nil
				},
				func(eng *stats.Engine, args []string) (interface{}, error) {
					p, _ := validation.NewCompareParams(args[0], args[1], args[2])
					rounds, err := eng.CompareDrivers(p.Driver1, p.Driver2, p.Year)
					if err != nil {
						return nil, err
					}
					return &models.CompareDriversResponse{
						Driver1:           p.Driver1,
						Driver2:           p.Driver2,
						SeasonYear:        p.Year,
						CombinedStandings: rounds,
					}, nil
				}),
		},
		{
			Use:   "stats <driver>",
			Short: "Career totals of one driver",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(validDriver, func(eng *stats.Engine, args []string) (interface{}, error) {
				career, err := eng.DriverCareerStats(args[0])
				if err != nil {
					return nil, err
				}
				return &models.DriverStatsResponse{Driver: args[0], CareerStats: career}, nil
			}),
		},
	}
}
