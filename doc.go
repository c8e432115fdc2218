// Package prax implements the auto-authorization engine of a wallet that
// normally requires interactive confirmation for every transaction signing
// request. Inside a time-boxed, origin-restricted trading session the
// engine signs swap-only transactions automatically; everything else falls
// back to an interactive approval flow raced against the already-started
// signing operation.
//
// End-users interact with the engine via the Service façade:
//
//	srv := prax.New(prax.WithCustodyService(signer))
//	_ = srv.TradingMode().SetAutoSign(ctx, true)
//	_ = srv.TradingMode().AddAllowedOrigin(ctx, "https://dex.example")
//	_ = srv.TradingMode().StartSession(ctx)
//	data, err := srv.Authorize(ctx, plan, "https://dex.example")
//
// See the policy, tradingmode, approval and custody packages for the
// individual collaborators.
package prax
