/*
Command hostgal reduces sky-survey catalogs around a Fast Radio Burst
localization and derives physical properties of candidate host galaxies.

Contents

Version 0.1

  Program overview
  Command line usage
  File formats
  Library packages


Program overview

Input is a source catalog exported from a sky-survey query as CSV, plus
the reference (FRB) coordinate on the command line.  The program
normalizes the catalog columns to a common schema, converts survey
magnitudes to flux densities with survey-specific zero points, sorts the
sources by angular separation from the reference coordinate, and prints
a short summary of the sources nearby.

Sample run, with a catalog slurped from a survey query in cat.csv:

  hostgal -ra 326.1052 -dec -40.9000 -s DES -col DES_r -mag cat.csv

produces output like

  Reference coordinate: 21ʰ44ᵐ25ˢ.25 -40°54′00″
  DES: There are 2 source(s) within 10.0 arcsec
  DES: The brightest source has DES_r of 21.37
  DES: The closest source is at separation 2.10 arcsec and has DES_r of 22.12


Command line usage

Invoking the program without arguments (or with invalid arguments) shows
this usage prompt.

  Usage: hostgal [options] <catalog.csv>   reduce catalog in file
         hostgal [options] -               reduce catalog from stdin
         hostgal -v                        display version and copyright

  Options:
         -ra <deg> -dec <deg>   reference (FRB) coordinate, required
         -s <survey>            survey name for metadata and column map
         -map <file>            column map configuration, YAML
         -fill <value>          fill masked cells with this value
         -u <units>             flux units: Jy, mJy, uJy (default mJy)
         -col <column>          photometry column to summarize
         -mag                   summarized column holds magnitudes
         -r <arcsec>            summary radius (default 10)
         -qr <arcmin>           query radius metadata (default 1)
         -json <file>           write reduced catalog as JSON


File formats

The input catalog is CSV with a header row naming the columns.  Cells
that do not parse as numbers are treated as masked; the -fill option
replaces masked cells with a fixed value, conventionally -999.

The column map file is YAML keyed by survey name.  Each survey maps
desired column names to the names the survey delivers, for example:

  HEASARC:
    ra: RA
    dec: DEC
  DES:
    DES_g: mag_auto_g
    DES_r: mag_auto_r

The JSON output holds the survey name, the query radius in arcmin, and
the reduced columns with units, in table order.  Columns that still
carry masked cells include the mask.

The extinction curve table read by the nebular package is whitespace
separated with named columns wave (Å) and Al_AV.  The command mkdust,
included with hostgal, regenerates the Galactic (Cardelli) table.


Library packages

The reduction and analysis code is usable without the command:

  catalog   catalog table, separation sort, identifier matching
  photom    magnitude to flux density conversion
  nebular   dust extinction, line luminosity, star formation rate
  linelist  galaxy emission-line rest wavelengths
  survey    survey query interface, catalog invariant, column maps

-------------
Public domain.
*/
package main
