package mission

import (
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/exercisemap"
)

var pool = []Mission{
	{
		ID: "strength-beginner-pushups", Axis: axis.Strength, Level: axis.Beginner,
		Description: "Complete 15 push-ups", Category: exercisemap.Push,
		Target: 15, Unit: UnitReps, RewardXP: 50, RewardCoins: 10,
	},
	{
		ID: "strength-beginner-pullups", Axis: axis.Strength, Level: axis.Beginner,
		Description: "Complete 5 assisted pull-ups", Category: exercisemap.Pull,
		Target: 5, Unit: UnitReps, RewardXP: 50, RewardCoins: 10,
	},
	{
		ID: "strength-intermediate-pullups", Axis: axis.Strength, Level: axis.Intermediate,
		Description: "Complete 10 pull-ups", Category: exercisemap.Pull,
		Target: 10, Unit: UnitReps, RewardXP: 100, RewardCoins: 20,
	},
	{
		ID: "strength-advanced-dips", Axis: axis.Strength, Level: axis.Advanced,
		Description: "Complete 20 dips", Category: exercisemap.Push,
		Target: 20, Unit: UnitReps, RewardXP: 150, RewardCoins: 30,
	},

	{
		ID: "endurance-beginner-squats", Axis: axis.Endurance, Level: axis.Beginner,
		Description: "Complete 30 bodyweight squats", Category: exercisemap.LowerBody,
		Target: 30, Unit: UnitReps, RewardXP: 50, RewardCoins: 10,
	},
	{
		ID: "endurance-intermediate-lunges", Axis: axis.Endurance, Level: axis.Intermediate,
		Description: "Complete 40 walking lunges", Category: exercisemap.Legs,
		Target: 40, Unit: UnitReps, RewardXP: 100, RewardCoins: 20,
	},
	{
		ID: "endurance-advanced-pistols", Axis: axis.Endurance, Level: axis.Advanced,
		Description: "Complete 10 pistol squats per leg", Category: exercisemap.LowerBody,
		Target: 20, Unit: UnitReps, RewardXP: 150, RewardCoins: 30,
	},

	{
		ID: "balance-beginner-wall-handstand", Axis: axis.Balance, Level: axis.Beginner,
		Description: "Hold wall handstand for 60 seconds total", Category: exercisemap.Balance,
		Target: 60, Unit: UnitSeconds, RewardXP: 50, RewardCoins: 10,
	},
	{
		ID: "balance-intermediate-crow", Axis: axis.Balance, Level: axis.Intermediate,
		Description: "Hold crow pose for 30 seconds", Category: exercisemap.Balance,
		Target: 30, Unit: UnitSeconds, RewardXP: 100, RewardCoins: 20,
	},
	{
		ID: "balance-advanced-freestanding-handstand", Axis: axis.Balance, Level: axis.Advanced,
		Description: "Hold freestanding handstand for 10 seconds", Category: exercisemap.Balance,
		Target: 10, Unit: UnitSeconds, RewardXP: 150, RewardCoins: 30,
	},

	{
		ID: "mobility-beginner-shoulder", Axis: axis.Mobility, Level: axis.Beginner,
		Description: "Complete 5 minutes of shoulder mobility work", Category: exercisemap.WarmUp,
		Target: 300, Unit: UnitSeconds, RewardXP: 50, RewardCoins: 10,
	},
	{
		ID: "mobility-intermediate-full-routine", Axis: axis.Mobility, Level: axis.Intermediate,
		Description: "Complete full mobility routine (10 exercises)", Category: exercisemap.Flexibility,
		Target: 10, Unit: UnitCount, RewardXP: 100, RewardCoins: 20,
	},
	{
		ID: "mobility-advanced-bridge", Axis: axis.Mobility, Level: axis.Advanced,
		Description: "Hold bridge position for 60 seconds", Category: exercisemap.Flexibility,
		Target: 60, Unit: UnitSeconds, RewardXP: 150, RewardCoins: 30,
	},

	{
		ID: "core-beginner-plank", Axis: axis.Core, Level: axis.Beginner,
		Description: "Hold plank for 90 seconds total", Category: exercisemap.Core,
		Target: 90, Unit: UnitSeconds, RewardXP: 50, RewardCoins: 10,
	},
	{
		ID: "core-intermediate-lsit", Axis: axis.Core, Level: axis.Intermediate,
		Description: "Hold L-sit for 20 seconds", Category: exercisemap.Core,
		Target: 20, Unit: UnitSeconds, RewardXP: 100, RewardCoins: 20,
	},
	{
		ID: "core-advanced-front-lever", Axis: axis.Core, Level: axis.Advanced,
		Description: "Hold front lever progression for 15 seconds", Category: exercisemap.Statics,
		Target: 15, Unit: UnitSeconds, RewardXP: 150, RewardCoins: 30,
	},

	{
		ID: "static-holds-beginner-form", Axis: axis.StaticHolds, Level: axis.Beginner,
		Description: "Practice 3 different exercises with perfect form", Category: exercisemap.Push,
		Target: 3, Unit: UnitCount, RewardXP: 50, RewardCoins: 10,
	},
	{
		ID: "static-holds-intermediate-muscle-up", Axis: axis.StaticHolds, Level: axis.Intermediate,
		Description: "Practice muscle-up progressions (5 sets)", Category: exercisemap.Pull,
		Target: 5, Unit: UnitCount, RewardXP: 100, RewardCoins: 20,
	},
	{
		ID: "static-holds-advanced-combo", Axis: axis.StaticHolds, Level: axis.Advanced,
		Description: "Complete 3 advanced skill combinations", Category: exercisemap.Statics,
		Target: 3, Unit: UnitCount, RewardXP: 150, RewardCoins: 30,
	},
}
