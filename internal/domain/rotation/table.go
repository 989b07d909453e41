package rotation

// table holds the fixed UTC schedule, indexed by hour of day
var table = [hoursPerDay]Entry{
	{Hour: 0, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: Matriarch},
		BuriedCity:   {Major: Night, Minor: None},
		Spaceport:    {Major: None, Minor: Harvester},
		BlueGate:     {Major: None, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 1, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: None},
		BuriedCity:   {Major: None, Minor: None},
		Spaceport:    {Major: Night, Minor: None},
		BlueGate:     {Major: None, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 2, slots: [numLocations]Slot{
		Dam:          {Major: Night, Minor: None},
		BuriedCity:   {Major: None, Minor: Caches},
		Spaceport:    {Major: None, Minor: None},
		BlueGate:     {Major: None, Minor: Husks},
		StellaMontis: {Major: Night, Minor: None},
	}},
	{Hour: 3, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: Blooms},
		BuriedCity:   {Major: Night, Minor: None},
		Spaceport:    {Major: None, Minor: Matriarch},
		BlueGate:     {Major: None, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 4, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: None},
		BuriedCity:   {Major: None, Minor: None},
		Spaceport:    {Major: Storm, Minor: None},
		BlueGate:     {Major: Night, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 5, slots: [numLocations]Slot{
		Dam:          {Major: Storm, Minor: None},
		BuriedCity:   {Major: None, Minor: Husks},
		Spaceport:    {Major: None, Minor: None},
		BlueGate:     {Major: None, Minor: Harvester},
		StellaMontis: {Major: Night, Minor: None},
	}},
	{Hour: 6, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: Probes},
		BuriedCity:   {Major: Night, Minor: None},
		Spaceport:    {Major: None, Minor: Tower},
		BlueGate:     {Major: None, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 7, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: None},
		BuriedCity:   {Major: None, Minor: None},
		Spaceport:    {Major: Night, Minor: None},
		BlueGate:     {Major: Storm, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 8, slots: [numLocations]Slot{
		Dam:          {Major: Night, Minor: None},
		BuriedCity:   {Major: None, Minor: Blooms},
		Spaceport:    {Major: None, Minor: None},
		BlueGate:     {Major: None, Minor: Probes},
		StellaMontis: {Major: Night, Minor: None},
	}},
	{Hour: 9, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: Harvester},
		BuriedCity:   {Major: Night, Minor: None},
		Spaceport:    {Major: None, Minor: Probes},
		BlueGate:     {Major: None, Minor: Blooms},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 10, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: Husks},
		BuriedCity:   {Major: None, Minor: None},
		Spaceport:    {Major: Bunker, Minor: None},
		BlueGate:     {Major: Night, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 11, slots: [numLocations]Slot{
		Dam:          {Major: Storm, Minor: None},
		BuriedCity:   {Major: None, Minor: Probes},
		Spaceport:    {Major: None, Minor: None},
		BlueGate:     {Major: None, Minor: Matriarch},
		StellaMontis: {Major: Night, Minor: None},
	}},
	{Hour: 12, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: None},
		BuriedCity:   {Major: Night, Minor: None},
		Spaceport:    {Major: None, Minor: Blooms},
		BlueGate:     {Major: None, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 13, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: Probes},
		BuriedCity:   {Major: None, Minor: None},
		Spaceport:    {Major: Night, Minor: None},
		BlueGate:     {Major: None, Minor: None},
		StellaMontis: {Major: Night, Minor: None},
	}},
	{Hour: 14, slots: [numLocations]Slot{
		Dam:          {Major: Night, Minor: None},
		BuriedCity:   {Major: None, Minor: Husks},
		Spaceport:    {Major: None, Minor: None},
		BlueGate:     {Major: None, Minor: Caches},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 15, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: None},
		BuriedCity:   {Major: Night, Minor: None},
		Spaceport:    {Major: None, Minor: Caches},
		BlueGate:     {Major: None, Minor: None},
		StellaMontis: {Major: Night, Minor: None},
	}},
	{Hour: 16, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: Harvester},
		BuriedCity:   {Major: None, Minor: None},
		Spaceport:    {Major: Storm, Minor: None},
		BlueGate:     {Major: Storm, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 17, slots: [numLocations]Slot{
		Dam:          {Major: Storm, Minor: Blooms},
		BuriedCity:   {Major: None, Minor: Blooms},
		Spaceport:    {Major: None, Minor: None},
		BlueGate:     {Major: None, Minor: Harvester},
		StellaMontis: {Major: Night, Minor: None},
	}},
	{Hour: 18, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: None},
		BuriedCity:   {Major: Night, Minor: None},
		Spaceport:    {Major: None, Minor: Harvester},
		BlueGate:     {Major: None, Minor: Husks},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 19, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: None},
		BuriedCity:   {Major: None, Minor: None},
		Spaceport:    {Major: Bunker, Minor: None},
		BlueGate:     {Major: Night, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 20, slots: [numLocations]Slot{
		Dam:          {Major: Night, Minor: Matriarch},
		BuriedCity:   {Major: None, Minor: Caches},
		Spaceport:    {Major: None, Minor: None},
		BlueGate:     {Major: None, Minor: Blooms},
		StellaMontis: {Major: Night, Minor: None},
	}},
	{Hour: 21, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: None},
		BuriedCity:   {Major: Night, Minor: None},
		Spaceport:    {Major: None, Minor: Matriarch},
		BlueGate:     {Major: None, Minor: None},
		StellaMontis: {Major: None, Minor: None},
	}},
	{Hour: 22, slots: [numLocations]Slot{
		Dam:          {Major: None, Minor: None},
		BuriedCity:   {Major: None, Minor: None},
		Spaceport:    {Major: Night, Minor: None},
		BlueGate:     {Major: Storm, Minor: None},
		StellaMontis: {Major: Night, Minor: None},
	}},
	{Hour: 23, slots: [numLocations]Slot{
		Dam:          {Major: Storm, Minor: Caches},
		BuriedCity:   {Major: None, Minor: Probes},
		Spaceport:    {Major: None, Minor: None},
		BlueGate:     {Major: None, Minor: Matriarch},
		StellaMontis: {Major: Night, Minor: None},
	}},
}
