// Package timezone holds the application timezone used for formatting audit timestamps,
// and a cached loader for the IANA zones that properties are configured with.
//
//	now := timezone.Now()                       // current time in the app timezone
//	formatted := timezone.Format(t, time.RFC3339)
//	loc, err := timezone.Load("Europe/Dublin")  // property zone, cached after the first load
//	local := timezone.In(t, loc)
//
// The app timezone is read from APP_TIMEZONE when the package is imported. Only standard
// IANA names are accepted; unknown names fall back to UTC for the app zone and are returned
// as ErrUnknown by Load.
package timezone
