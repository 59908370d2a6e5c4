// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package services adapts long-running components to suture.Service.

Each wrapper turns a component's own lifecycle into Serve(ctx) error:

  - HTTPServerService: ListenAndServe/Shutdown of *http.Server (api layer)
  - DatasetWatcherService: Start/Stop of *dataset.Watcher (data layer)

Serve blocks until the context is canceled, stops the component, and
returns ctx.Err(). Any other returned error makes suture restart the
service according to the tree's backoff policy.

The wrappers depend on small interfaces instead of concrete types, so the
tests drive them with mocks.
*/
package services
