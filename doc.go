/*
Command mpaint draws the spatial distribution of minor planets from Minor
Planet Center orbital-element catalogs.

Program overview

Input is an orbital-element catalog in the MPC export format, either the
full MPCORB.DAT or the NEAm00.txt near-Earth subset.  Output is a raster
figure of heliocentric ecliptic x-y positions at a chosen epoch, colored by
dynamical class, with the Sun, planet positions, and planet orbits drawn
underneath.

The export format is documented at
https://www.minorplanetcenter.net/iau/info/MPOrbitFormat.html.  Positions
are obtained by advancing each object's mean anomaly linearly from its
osculation epoch and solving Kepler's equation, which is accurate enough
for a distribution figure near the catalog epoch.

Sample run:

	mpaint fetch
	mpaint plot 2026-08-01T00:00:00

which writes MPCORB.jpg.  Classes and their membership rules:

	Abbr.  Rule
	---    -------------
	NEA    q < 1.3
	MBA    q >= 1.3, a = 1.8-3.3
	Hil    q >= 1.3, a = 3.7-4.0, e = 0.07-0.30
	JTr    q >= 1.3, a = 5.0-5.4
	TNO    q >= 1.3, a >= 30.0
	Oth    everything else

Command line usage

	mpaint fetch [--data DIR]
	mpaint plot DATE [options]
	mpaint ephem DESIG DATE [--end DATE] [--mpcorb PATH]

Plot options:

	--range N       plot extent in AU, square from -N to +N
	--rmin N        minimum heliocentric distance to plot, AU
	--rmax N        maximum heliocentric distance to plot, AU
	--nobj N        plot only the first N objects
	--mpcorb PATH   catalog file, default <data dir>/MPCORB.DAT
	--out FILE      figure file name, format by extension
	--vsop87 DIR    VSOP87 data directory for the planet underlay

The distance filter bounds are inclusive.  When the filter removes every
object the figure is still written, empty but for the underlay, and a
warning is logged.

Configuring file locations

An optional mpaint.toml, found in the directory named by the MPAINT_CONFIG
environment variable or in the working directory, can set defaults:

	data_dir = "/var/data/mpc"
	vsop87_dir = "/var/data/vsop87"
	out = "sssb.jpg"
	range = 6.5

Command line flags take precedence over the file.

The planet underlay needs the VSOP87B data files.  If they cannot be
loaded the figure is rendered without the underlay and a warning is
logged; minor planet positions are unaffected.

Malformed catalog lines are skipped, counted, and reported; they never
abort a run.  A missing catalog file is fatal.

-------------
Public domain.
*/
package main
