// Copyright 2026 goldrock.io. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package minelines builds the dashboard data file for a set of artisanal
mining lines from the production spreadsheet.

minelines can be used from the command line but is really intended to be run
from a cron job or CI step that refreshes the dashboard's data.json after
each shift's figures are captured.

minelines supports the following commands:

  - build, to fetch the production rows, derive the per-row economics and write the dashboard JSON
  - get, to download the production worksheet as a TSV file
  - version, to display the CLI version
*/
package minelines
