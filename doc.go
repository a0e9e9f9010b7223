// Package vfstracker reúne os serviços backend do VFS Tracker: funções
// Lambda independentes (uma por capacidade) atrás do API Gateway, que mantêm
// eventos de saúde vocal, perfis de usuário e acesso a arquivos via URLs
// pré-assinadas do S3.
//
// Cada handler é uma passada linear e stateless: extrai as claims do ID
// token (pré-verificado pelo authorizer upstream), autoriza o recurso pelo
// dono codificado no caminho do objeto, executa exatamente uma chamada
// externa (DynamoDB ou S3) e formata a resposta JSON com CORS. Não há estado
// compartilhado entre invocações além da configuração imutável.
//
// Sub-Pacotes Principais:
//
// 1. pkg/claims:
//   - Registro de identidade Verified, construível apenas na fronteira de
//     confiança (authorizer upstream ou decode do payload do ID token).
//
// 2. pkg/authz:
//   - Regras de posse por prefixo de chave (attachments/, avatars/,
//     voice-tests/) e por parâmetro de caminho.
//
// 3. dynstore:
//   - Abstração de persistência tipada (Store[T]) sobre o DynamoDB, com
//     QueryBuilder fluente e mocks para teste.
//
// 4. s3sign:
//   - Emissão de URLs pré-assinadas (GET/PUT) e reescrita do host para o
//     alias de CDN adequado à região do chamador.
//
// 5. handlers:
//   - As capacidades expostas: URL de arquivo, URL de avatar, URL de
//     upload, listagem de eventos, feed público, criação de evento e
//     atualização de perfil.
//
// Os binários em cmd/ empacotam um handler cada (um Lambda por capacidade);
// cmd/emulator sobe as mesmas capacidades num servidor HTTP local para
// desenvolvimento do frontend sem AWS.
package vfstracker
