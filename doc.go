// Package circle is a Go interface into the Circle Developer-Controlled Wallets platform.
//
// The SDK provides a way to manage wallet sets, wallets, transactions and tokens held in
// the platform's custody, and handles the entity secret encryption required to authorize
// privileged operations.  Transaction construction and signing happen on the platform;
// this client only encrypts the secret that authorizes them.
//
// Quick links:
//
//   - [Circle Docs] for learning more about developer-controlled wallets.
//   - [Examples] are standalone runnable examples of how to use the SDK.
//
// You can create a client, provision a wallet, and transfer funds with the below example:
//
//	// Create a Client holding the entity secret
//	client, err := circle.NewClient(circle.SandboxConfig, apiKey, circle.EntitySecret(secretHex))
//	if err != nil {
//		panic("Failed to create client:" + err.Error())
//	}
//
//	// Create a wallet set and a wallet on Polygon Amoy
//	walletSet, err := client.CreateWalletSet(ctx, "treasury")
//	if err != nil {
//		panic("Failed to create wallet set:" + err.Error())
//	}
//	wallets, err := client.CreateWallets(ctx, circle.CreateWalletsRequest{
//		WalletSetID: walletSet.ID,
//		Blockchains: []string{circle.BlockchainPolygonAmoy},
//	})
//	if err != nil {
//		panic("Failed to create wallets:" + err.Error())
//	}
//
//	// Transfer 0.01 USDC out of the wallet
//	response, err := client.CreateTransferTransaction(ctx, circle.CreateTransferRequest{
//		WalletID:           wallets[0].ID,
//		DestinationAddress: destination,
//		Blockchain:         circle.BlockchainPolygonAmoy,
//		TokenAddress:       usdcAddress,
//		Amounts:            []string{"0.01"},
//		FeeLevel:           circle.FeeLevelMedium,
//	})
//	if err != nil {
//		panic("Failed to submit transfer:" + err.Error())
//	}
//
//	// Poll the transaction until it completes
//	transaction, err := client.Transaction(ctx, response.ID)
//	if err != nil {
//		panic("Failed to fetch transaction:" + err.Error())
//	}
//	fmt.Printf("The transfer is %s with hash %s\n", transaction.State, transaction.TxHash)
//
// Before any of the above works, the account entity needs a registered entity
// secret.  Generate one with [crypto.GenerateEntitySecret], register it once
// with [Client.RegisterEntitySecret], and keep its hex form safe; the SDK
// re-encrypts it under the platform's RSA public key for every privileged call.
//
// [Examples]: https://github.com/Luckyisrael/CircleDeveloperControlledWalletSDK/tree/main/examples
//
// [Circle Docs]: https://developers.circle.com/w3s/developer-controlled-wallets
package circle
